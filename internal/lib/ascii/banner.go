// Package ascii рисует детерминированные ASCII-баннеры для сгенерированных постов.
//
// Баннер — чистая функция от строки темы: рамка фиксированной ширины с
// центрированным текстом и декоративный блок. Внешних зависимостей нет,
// рендеринг всегда успешен.
package ascii

import "strings"

const (
	boxWidth   = 40
	maxLineLen = 36
)

const footer = `
    ⚡ VIBE TERMINAL ⚡

    ▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓
    ▓ VIRAL POST  ▓
    ▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓
`

// Banner возвращает рамку с темой поста, перенесённой по строкам и
// центрированной, плюс декоративный блок.
func Banner(topic string) string {
	border := strings.Repeat("═", boxWidth)
	lines := wrap(strings.ToUpper(topic), maxLineLen)

	var b strings.Builder
	b.WriteString("╔" + border + "╗\n")
	for _, line := range lines {
		runes := []rune(line)
		padding := (boxWidth - len(runes)) / 2
		b.WriteString("║")
		b.WriteString(strings.Repeat(" ", padding))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", boxWidth-padding-len(runes)))
		b.WriteString("║\n")
	}
	b.WriteString("╚" + border + "╝\n\n")
	b.WriteString(footer)
	return b.String()
}

// wrap режет строку на куски не длиннее limit рун.
// Пустая строка даёт одну пустую линию, чтобы рамка не схлопывалась.
func wrap(s string, limit int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	for len(runes) > limit {
		lines = append(lines, string(runes[:limit]))
		runes = runes[limit:]
	}
	return append(lines, string(runes))
}
