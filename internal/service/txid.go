package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	txIDAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	txIDSuffixLength = 9
)

// newTransactionID генерирует идентификатор платежа вида tx_<unix-millis>_<suffix>.
// Уникальность вероятностная: случайного суффикса достаточно, чтобы два платежа в одну
// миллисекунду не совпали, жесткого ограничения уникальности в БД нет.
func newTransactionID() string {
	buf := make([]byte, txIDSuffixLength)
	// rand.Read из crypto/rand не возвращает ошибок начиная с go 1.24.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = txIDAlphabet[int(b)%len(txIDAlphabet)]
	}
	return fmt.Sprintf("tx_%d_%s", time.Now().UnixMilli(), string(buf))
}
