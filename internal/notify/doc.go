// Package notify содержит notifier — компонент отправки email-уведомлений
// о заявках с сайта.
//
// Notifier получает события lead.created из RabbitMQ, загружает заявку
// из БД, отправляет письмо и помечает заявку как NOTIFIED. При
// недоступном RabbitMQ работает в режиме периодического опроса БД.
package notify
