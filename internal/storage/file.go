// Package storage 애플리케이션 상태를 이름 단위의 바이트 덩어리(Blob)로 디스크에 보관하는 저장소를 제공합니다.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	applog "github.com/darkkaiser/application-board/pkg/log"
)

const component = "storage"

// tempFilePattern 원자적 쓰기 중 생성되는 임시 파일의 이름 패턴입니다.
const tempFilePattern = ".blob-*.tmp"

// staleTempFileAge 이 시간보다 오래된 임시 파일은 이전 실행의 잔존물로 간주하여 삭제합니다.
const staleTempFileAge = time.Hour

// FileStore 지정된 디렉토리 아래에 이름별 파일로 데이터를 저장하는 저장소입니다.
//
// 모든 쓰기는 "임시 파일 쓰기 → fsync → rename" 순서로 수행되므로,
// 저장 도중 프로세스가 종료되더라도 이전 내용 또는 새 내용 중 하나만 관찰됩니다.
type FileStore struct {
	baseDir string

	mu sync.Mutex
}

// NewFileStore 파일 시스템 기반 저장소를 생성합니다.
// 디렉토리가 없으면 생성하고, 이전 실행에서 남은 임시 파일을 정리합니다.
func NewFileStore(dir string) (*FileStore, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrDirectoryAccessFailed(err, dir)
	}

	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &FileStore{baseDir: absDir}
	s.cleanupStaleTempFiles(time.Now().Add(-staleTempFileAge))

	return s, nil
}

// Dir 저장소의 절대 경로를 반환합니다.
func (s *FileStore) Dir() string {
	return s.baseDir
}

// Load 지정된 이름으로 저장된 데이터를 읽어옵니다.
// 저장된 적이 없으면 ErrNotFound를 반환합니다.
func (s *FileStore) Load(name string) ([]byte, error) {
	path, err := s.resolveSafePath(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, NewErrReadFailed(err, name)
	}

	return data, nil
}

// Save 지정된 이름으로 데이터를 원자적으로 저장합니다.
func (s *FileStore) Save(name string, data []byte) error {
	path, err := s.resolveSafePath(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeAtomic(path, name, data)
}

// resolveSafePath 이름을 저장소 디렉토리 하위의 절대 경로로 변환합니다.
// 경로 구분자를 포함하거나 디렉토리를 벗어나는 이름은 거부합니다.
func (s *FileStore) resolveSafePath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", NewErrInvalidName(name)
	}

	cleanPath := filepath.Clean(filepath.Join(s.baseDir, name))

	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		applog.WithComponentAndFields(component, applog.Fields{
			"name":     name,
			"base_dir": s.baseDir,
			"path":     cleanPath,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 같은 디렉토리에 임시 파일을 만들어 기록한 뒤 최종 파일명으로 교체합니다.
func (s *FileStore) writeAtomic(path, name string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return NewErrWriteFailed(err, name, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 삭제할 수 없으므로 Close가 Remove보다 먼저 실행되어야 합니다.
	// rename이 성공한 뒤에는 Remove가 무시됩니다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return NewErrWriteFailed(err, name, "파일 쓰기")
	}

	if err := tmpFile.Sync(); err != nil {
		return NewErrWriteFailed(err, name, "디스크 동기화")
	}

	if err := tmpFile.Close(); err != nil {
		return NewErrWriteFailed(err, name, "파일 닫기")
	}

	if err := renameWithRetry(tmpPath, path); err != nil {
		return NewErrWriteFailed(err, name, "파일 이름 변경")
	}

	// 이름 변경이 디스크에 반영되도록 디렉토리도 동기화합니다. 실패해도 치명적이지 않습니다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 백신이나 인덱서가 파일을 잠시 점유하는 경우(Windows)를 위해 짧게 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		if lastErr = os.Rename(oldPath, newPath); lastErr == nil {
			return nil
		}
		time.Sleep(retryDelay)
	}

	return lastErr
}

// cleanupStaleTempFiles 비정상 종료로 남겨진 오래된 임시 파일을 삭제합니다.
func (s *FileStore) cleanupStaleTempFiles(threshold time.Time) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if matched, _ := filepath.Match(tempFilePattern, entry.Name()); !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, entry.Name())
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"file": fullPath,
			}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
		}
	}
}
