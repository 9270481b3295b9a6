package service

import (
	"fmt"
	"strings"

	"github.com/avc/smsrent/internal/domain"
)

type param struct {
	name  string
	value string
}

// requireParams проверяет, что все параметры непустые и пригодны как сегмент пути.
// Возвращает значения без пробелов по краям.
func requireParams(op string, params ...param) ([]string, error) {
	values := make([]string, len(params))
	for i, p := range params {
		v := strings.TrimSpace(p.value)
		if v == "" {
			return nil, domain.NewInvalidInput(op, p.name+" is required")
		}
		// "." и ".." в пути сервер нормализует в другой эндпоинт
		if v == "." || v == ".." {
			return nil, domain.NewInvalidInput(op, fmt.Sprintf("%s %q is not allowed", p.name, v))
		}
		values[i] = v
	}
	return values, nil
}
