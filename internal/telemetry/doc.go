// Package telemetry содержит настройку structured logging.
//
// Логирование конфигурируется через окружение:
//   - LOG_LEVEL  — DEBUG, INFO, WARN, ERROR (по умолчанию INFO)
//   - LOG_FORMAT — json (по умолчанию) или text
package telemetry
