// Package cli содержит команды админ-инструмента ardiya.
//
// CLI работает через HTTP API и не обращается к БД напрямую.
// Структура:
//   - client.go  — HTTP-клиент API со своими response-типами
//   - output.go  — табличный и JSON вывод
//   - product.go — команды каталога
//   - project.go — команды портфолио
//   - lead.go    — просмотр заявок (quotes, contacts)
package cli
