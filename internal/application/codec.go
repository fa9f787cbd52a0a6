package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	applog "github.com/darkkaiser/application-board/pkg/log"
	"github.com/tidwall/gjson"
)

// storedRecord 디스크에 저장되는 지원서 한 건의 형식입니다.
// messageId는 예전 형식과의 호환을 위해 항상 null로 기록합니다.
type storedRecord struct {
	Status      Status  `json:"status"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	MessageID   *string `json:"messageId"`
}

const indent = "  "

// encode 지원서 목록을 이름을 키로 하는 JSON 객체로 직렬화합니다.
// Go의 map은 순서를 보장하지 않으므로 멤버를 직접 순서대로 기록합니다.
func encode(records []Record) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n" + indent)

		key, err := json.Marshal(r.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")

		value, err := json.MarshalIndent(storedRecord{
			Status:      r.Status,
			Description: r.Description,
			Link:        r.Link,
		}, indent, indent)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	if len(records) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// decode 저장된 JSON 객체를 문서 순서대로 읽어 지원서 목록으로 변환합니다.
//
// 다음의 경우 손상된 데이터로 간주합니다.
//   - JSON 객체가 아니거나 문법 오류가 있는 경우
//   - 이름이 비어 있거나 중복된 경우
//   - status가 Open/Closed가 아닌 경우
//   - Open 상태인데 설명이나 링크가 비어 있는 경우
//
// Closed 상태인데 설명이나 링크가 남아 있는 경우는 비운 뒤 경고를 남깁니다.
func decode(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, NewErrCorruptState(nil, "JSON 형식이 올바르지 않습니다")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, NewErrCorruptState(nil, "최상위 값이 JSON 객체가 아닙니다")
	}

	var (
		records []Record
		seen    = make(map[string]struct{})
		decErr  error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		r, err := decodeRecord(key.String(), value)
		if err != nil {
			decErr = err
			return false
		}
		if _, dup := seen[r.Name]; dup {
			decErr = NewErrCorruptState(nil, fmt.Sprintf("중복된 지원서 이름이 있습니다: '%s'", r.Name))
			return false
		}

		seen[r.Name] = struct{}{}
		records = append(records, r)
		return true
	})
	if decErr != nil {
		return nil, decErr
	}

	return records, nil
}

func decodeRecord(name string, value gjson.Result) (Record, error) {
	if strings.TrimSpace(name) == "" {
		return Record{}, NewErrCorruptState(nil, "지원서 이름이 비어 있습니다")
	}
	if !value.IsObject() {
		return Record{}, NewErrCorruptState(nil, fmt.Sprintf("'%s'의 값이 JSON 객체가 아닙니다", name))
	}

	textField := func(field string) (string, error) {
		v := value.Get(field)
		switch v.Type {
		case gjson.String:
			return v.Str, nil
		case gjson.Null:
			return "", nil
		default:
			return "", NewErrCorruptState(nil, fmt.Sprintf("'%s'의 %s 값이 문자열이 아닙니다", name, field))
		}
	}

	status := value.Get("status")
	if status.Type != gjson.String || !Status(status.Str).Valid() {
		return Record{}, NewErrCorruptState(nil, fmt.Sprintf("'%s'의 status 값이 올바르지 않습니다: %s", name, status.Raw))
	}

	description, err := textField("description")
	if err != nil {
		return Record{}, err
	}
	link, err := textField("link")
	if err != nil {
		return Record{}, err
	}

	r := Record{
		Name:        name,
		Status:      Status(status.Str),
		Description: description,
		Link:        link,
	}

	switch r.Status {
	case StatusOpen:
		if strings.TrimSpace(r.Description) == "" || strings.TrimSpace(r.Link) == "" {
			return Record{}, NewErrCorruptState(nil, fmt.Sprintf("'%s'이(가) Open 상태이지만 설명 또는 링크가 비어 있습니다", name))
		}
	case StatusClosed:
		if r.Description != "" || r.Link != "" {
			applog.WithComponentAndFields(component, applog.Fields{
				"application": name,
			}).Warn("Closed 상태의 지원서에 설명 또는 링크가 남아 있어 비웠습니다")

			r.Description = ""
			r.Link = ""
		}
	}

	return r, nil
}
