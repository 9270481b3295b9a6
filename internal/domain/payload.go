package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNotObject возвращается при попытке декодировать в Payload что-либо кроме JSON-объекта
var ErrNotObject = errors.New("payload: json value is not an object")

// Payload представляет слабо типизированный ответ удаленного сервиса.
// Порядок ключей сохраняется таким, каким он пришел по сети.
// Значения: string, json.Number, bool, nil, Payload (вложенный объект) или []any.
type Payload struct {
	keys   []string
	values map[string]any
}

// NewPayload создает пустой Payload
func NewPayload() Payload {
	return Payload{values: make(map[string]any)}
}

// Set устанавливает значение ключа. Повторная установка сохраняет исходную позицию ключа.
func (p *Payload) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Keys возвращает ключи в порядке их получения
func (p Payload) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Len возвращает количество ключей
func (p Payload) Len() int {
	return len(p.keys)
}

// IsEmpty сообщает, что в Payload нет ни одного ключа
func (p Payload) IsEmpty() bool {
	return len(p.keys) == 0
}

// Get возвращает значение ключа как есть
func (p Payload) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has сообщает о наличии ключа
func (p Payload) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// String возвращает скалярное значение ключа в текстовом виде.
// Числа возвращаются в точности так, как были записаны в JSON.
func (p Payload) String(key string) string {
	v, ok := p.values[key]
	if !ok {
		return ""
	}
	return scalarString(v)
}

// Number возвращает числовое значение ключа
func (p Payload) Number(key string) (json.Number, bool) {
	switch v := p.values[key].(type) {
	case json.Number:
		return v, true
	case string:
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			return json.Number(v), true
		}
	}
	return "", false
}

// Object возвращает вложенный объект
func (p Payload) Object(key string) (Payload, bool) {
	v, ok := p.values[key].(Payload)
	return v, ok
}

// List возвращает вложенный массив
func (p Payload) List(key string) ([]any, bool) {
	v, ok := p.values[key].([]any)
	return v, ok
}

// Objects возвращает элементы-объекты вложенного массива, пропуская прочие значения
func (p Payload) Objects(key string) []Payload {
	list, _ := p.List(key)
	out := make([]Payload, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(Payload); ok {
			out = append(out, obj)
		}
	}
	return out
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// MarshalJSON кодирует Payload с сохранением порядка ключей
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, fmt.Errorf("payload: failed to encode %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON декодирует JSON-объект с сохранением порядка ключей
func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	obj, err := decodeObject(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("payload: trailing data after object")
	}

	*p = obj
	return nil
}

func decodeObject(dec *json.Decoder) (Payload, error) {
	obj := NewPayload()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Payload{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Payload{}, fmt.Errorf("payload: unexpected key token %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return Payload{}, err
		}
		obj.Set(key, value)
	}
	// закрывающая скобка
	if _, err := dec.Token(); err != nil {
		return Payload{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	list := make([]any, 0)
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		list = append(list, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return list, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		return nil, fmt.Errorf("payload: unexpected delimiter %q", delim)
	}
}
