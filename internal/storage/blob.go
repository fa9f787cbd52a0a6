package storage

// Blob 저장소 안의 하나의 이름에 고정된 핸들입니다.
// 상태 파일마다 Blob을 하나씩 만들어 소유자에게 전달합니다.
type Blob struct {
	store *FileStore
	name  string
}

// Blob 지정된 이름에 고정된 핸들을 반환합니다.
func (s *FileStore) Blob(name string) *Blob {
	return &Blob{store: s, name: name}
}

// Name 파일명을 반환합니다.
func (b *Blob) Name() string {
	return b.name
}

// Load 저장된 데이터를 읽어옵니다. 저장된 적이 없으면 ErrNotFound를 반환합니다.
func (b *Blob) Load() ([]byte, error) {
	return b.store.Load(b.name)
}

// Save 데이터를 원자적으로 저장합니다.
func (b *Blob) Save(data []byte) error {
	return b.store.Save(b.name, data)
}
