// Package mq содержит обвязку RabbitMQ для событий о заявках.
//
// Структура:
//   - connection.go — соединение с автоматическим reconnect
//   - topology.go   — exchanges, queues и bindings
//   - publisher.go  — публикация событий lead.created
//   - consumer.go   — потребление очередей заявок с ack/nack
//
// API публикует событие при создании заявки; notifier потребляет его
// и отправляет email. Недоставленные после nack сообщения уходят в DLQ.
package mq
