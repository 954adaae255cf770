package service

import (
	"errors"

	"github.com/fsdevblog/fidelize/internal/domain"
)

func isRecordNotFound(err error) bool {
	return errors.Is(err, domain.ErrRecordNotFound)
}
