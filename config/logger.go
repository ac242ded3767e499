package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	// Registradores por nivel
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
)

// SetupLogger inicializa la configuración de logs
func SetupLogger() error {
	// Crear directorio de logs
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("no se pudo crear el directorio de logs: %v", err)
	}

	// Nombre de archivo con la fecha actual
	currentTime := time.Now()
	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", currentTime.Format("2006-01-02")))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("no se pudo abrir el archivo de logs: %v", err)
	}

	// Salida doble: consola y archivo
	multiWriter := io.MultiWriter(os.Stdout, logFile)

	InfoLogger = log.New(multiWriter, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(multiWriter, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// Info registra un mensaje de nivel información
func Info(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// Warning registra un mensaje de nivel advertencia
func Warning(format string, v ...interface{}) {
	WarningLogger.Printf(format, v...)
}

// Error registra un mensaje de nivel error
func Error(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}
