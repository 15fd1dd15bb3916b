// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go         — Handler с DI (репозитории, publisher, mailer, logger)
//   - routes.go          — регистрация маршрутов
//   - middleware.go      — middleware (logging, recovery, CORS, metrics)
//   - response.go        — унифицированные JSON-ответы и обработка ошибок
//   - dto.go             — Data Transfer Objects (request/response)
//   - product_handler.go — обработчики для /products и /categories
//   - project_handler.go — обработчики для /projects
//   - lead_handler.go    — обработчики для /quotes и /contacts
//
// API предоставляет REST endpoints каталога, портфолио и приёма заявок.
package api
