package callback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Begin — данные кнопок «Начать» и «Пройти ещё раз».
const Begin = "begin"

const answerPrefix = "a"

// maxDataLen — ограничение Telegram на callback_data в байтах.
const maxDataLen = 64

// ErrMalformed возвращается, если данные не похожи на ответ.
var ErrMalformed = errors.New("malformed callback data")

// EncodeAnswer кодирует нажатие варианта slot вопроса с токеном token.
func EncodeAnswer(token string, slot int) string {
	return answerPrefix + ":" + token + ":" + strconv.Itoa(slot)
}

// DecodeAnswer разбирает данные, закодированные EncodeAnswer.
func DecodeAnswer(data string) (token string, slot int, err error) {
	if len(data) > maxDataLen {
		return "", 0, fmt.Errorf("%w: too long", ErrMalformed)
	}

	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != answerPrefix {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformed, data)
	}

	slot, err = strconv.Atoi(parts[2])
	if err != nil || slot < 0 {
		return "", 0, fmt.Errorf("%w: bad slot %q", ErrMalformed, parts[2])
	}

	return parts[1], slot, nil
}

// IsAnswer сообщает, похожи ли данные на ответ.
func IsAnswer(data string) bool {
	return strings.HasPrefix(data, answerPrefix+":")
}
