// Package docs Best Time Service API.
//
// Сервис рекомендаций лучшего времени для поездки. Определяет лучшие
// и нежелательные месяцы для посещения города или произвольных координат
// по климатическому и туристическому профилю локации.
//
// Основные возможности:
// - Рекомендация по имени города (встроенный справочник + курируемые записи)
// - Рекомендация по координатам через подбор похожей эталонной локации
// - Свободный текстовый поиск с геокодированием
// - Список известных направлений
// - Обогащение ответов текущей погодой
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
