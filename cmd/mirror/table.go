/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

type cell struct {
	text  string
	color *color.Color
}

func plain(s string) cell { return cell{text: s} }

// Simple table with bold header and colored cells.
type table struct {
	w       io.Writer
	headers []string
	rows    [][]cell
	noColor bool
}

func newTable(w io.Writer, noColor bool, headers ...string) *table {
	return &table{w: w, headers: headers, noColor: noColor}
}

func (t *table) addRow(cells ...cell) {
	t.rows = append(t.rows, cells)
}

// Returns colored cell, color is disabled if table has no colors.
func (t *table) colored(s string, attrs ...color.Attribute) cell {
	c := color.New(attrs...)
	if t.noColor {
		c.DisableColor()
	}
	return cell{text: s, color: c}
}

func (t *table) render() {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c.text); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	header := t.colored("", color.Bold, color.FgCyan).color
	for i, h := range t.headers {
		header.Fprint(t.w, padRight(h, widths[i]))
		t.gap(i, len(t.headers))
	}
	fmt.Fprintln(t.w)

	gray := t.colored("", color.FgHiBlack).color
	for i, width := range widths {
		gray.Fprint(t.w, strings.Repeat("─", width))
		t.gap(i, len(widths))
	}
	fmt.Fprintln(t.w)

	for _, row := range t.rows {
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			s := padRight(c.text, widths[i])
			if c.color != nil {
				c.color.Fprint(t.w, s)
			} else {
				fmt.Fprint(t.w, s)
			}
			t.gap(i, len(row))
		}
		fmt.Fprintln(t.w)
	}
}

func (t *table) gap(i, n int) {
	if i < n-1 {
		fmt.Fprint(t.w, "  ")
	}
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
