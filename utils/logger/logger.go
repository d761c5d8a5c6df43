package logger

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

type stringer interface {
	String() string
}

// objWidth is the width of the object column.
const objWidth = 20

var base = logrus.New()

func objToString(obj any) (objStr string) {
	if obj == nil {
		objStr = "NIL"
	} else if stringerObj, ok := obj.(stringer); ok {
		objStr = stringerObj.String()
	} else if objStr, ok = obj.(string); ok {
	} else {
		objStr = reflect.TypeOf(obj).Name()
	}
	if len(objStr) > objWidth {
		objStr = objStr[:objWidth]
	}
	return
}

func format(obj any, msg string) string {
	return fmt.Sprintf("|%20s|%-100s", objToString(obj), msg)
}

// Init sets the level and the text formatter of the package logger.
func Init(lvl logrus.Level) {
	base.SetLevel(lvl)
	base.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "2006/02/01 15:04:05",
	})
}

// Base returns the underlying logrus logger, e.g. to attach hooks.
func Base() *logrus.Logger {
	return base
}

func log(lvl logrus.Level, object any, message string) {
	if !base.IsLevelEnabled(lvl) {
		return
	}
	base.Log(lvl, format(object, message))
}

func logf(lvl logrus.Level, object any, message string, args ...any) {
	if !base.IsLevelEnabled(lvl) {
		return
	}
	base.Log(lvl, format(object, fmt.Sprintf(message, args...)))
}

func Trace(object any, message string) {
	log(logrus.TraceLevel, object, message)
}

func Tracef(object any, message string, args ...any) {
	logf(logrus.TraceLevel, object, message, args...)
}

func Debug(object any, message string) {
	log(logrus.DebugLevel, object, message)
}

func Debugf(object any, message string, args ...any) {
	logf(logrus.DebugLevel, object, message, args...)
}

func Info(object any, message string) {
	log(logrus.InfoLevel, object, message)
}

func Infof(object any, message string, args ...any) {
	logf(logrus.InfoLevel, object, message, args...)
}

func Warning(object any, message string) {
	log(logrus.WarnLevel, object, message)
}

func Warningf(object any, message string, args ...any) {
	logf(logrus.WarnLevel, object, message, args...)
}

func Error(object any, message string) {
	log(logrus.ErrorLevel, object, message)
}

func Errorf(object any, message string, args ...any) {
	logf(logrus.ErrorLevel, object, message, args...)
}

func Fatal(object any, message string) {
	base.Fatal(format(object, message))
}

func Fatalf(object any, message string, args ...any) {
	base.Fatal(format(object, fmt.Sprintf(message, args...)))
}
