package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

// Combine merges non-nil errors into one.
func Combine(errs ...error) error {
	errorMsgs := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			errorMsgs = append(errorMsgs, err.Error())
		}
	}
	if len(errorMsgs) == 0 {
		return nil
	}
	return errors.New(strings.Join(errorMsgs, ", "))
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
