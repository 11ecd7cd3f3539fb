package logger

import (
	"log"
	"os"
)

var (
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
	DebugLogger *log.Logger
)

// Init wires the package loggers. Warnings go to stdout alongside info;
// only errors go to stderr.
func Init() {
	flags := log.LstdFlags | log.Lmsgprefix
	InfoLogger = log.New(os.Stdout, "[INFO] ", flags)
	WarnLogger = log.New(os.Stdout, "[WARN] ", flags)
	ErrorLogger = log.New(os.Stderr, "[ERROR] ", flags)
	DebugLogger = log.New(os.Stdout, "[DEBUG] ", flags)
}

func Info(msg string) {
	InfoLogger.Println(msg)
}

func Infof(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

func Warn(msg string) {
	WarnLogger.Println(msg)
}

func Warnf(format string, v ...interface{}) {
	WarnLogger.Printf(format, v...)
}

func Error(msg string) {
	ErrorLogger.Println(msg)
}

func Errorf(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}

func Debug(msg string) {
	DebugLogger.Println(msg)
}

func Debugf(format string, v ...interface{}) {
	DebugLogger.Printf(format, v...)
}

func Fatal(msg string) {
	ErrorLogger.Fatal(msg)
}

func Fatalf(format string, v ...interface{}) {
	ErrorLogger.Fatalf(format, v...)
}
