// Package format scans format strings (C, Python, str.format braces)
// inside PO messages: extraction for consistency checks, and word and
// character iteration that treats a whole format string as one token.
//
// Назначение: разбор форматных последовательностей и подсчёт
// слов/символов для статистики. Не делает: подстановки значений.
package format
