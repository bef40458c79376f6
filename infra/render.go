package infra

import (
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/cloudcopper/cardlist/lib"
	"github.com/dustin/go-humanize"
	"github.com/unrolled/render"
)

type Render = *render.Render

func NewRender(f fs.FS, layout string) Render {
	opts := render.Options{
		FileSystem: render.FS(f),
		Extensions: []string{".tmpl", ".html"},
		Layout:     layout,
		Funcs: []template.FuncMap{
			{
				"ago":    ago,
				"comma":  comma,
				"add":    add,
				"sub":    sub,
				"pages":  pages,
				"href":   href,
				"isHref": isHref,
			},
		},
		IndentJSON:    true,
		IsDevelopment: lib.IsDevelopment(),
	}
	r := render.New(opts)
	return r
}

// ago returns humanized age of UTC unix time
func ago(unix int64) string {
	return humanize.Time(time.Unix(unix, 0))
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

func add(a, b int) int {
	return a + b
}

func sub(a, b int) int {
	return a - b
}

// pages returns 1..N page numbers for total items
func pages(total, perPage int) []int {
	if perPage < 1 {
		return []int{1}
	}
	n := (total + perPage - 1) / perPage
	if n < 1 {
		n = 1
	}
	a := make([]int, 0, n)
	for x := 1; x <= n; x++ {
		a = append(a, x)
	}
	return a
}

func isHref(s string) bool {
	hrefs := []string{
		"https://",
		"http://",
		"mailto:",
	}

	for _, h := range hrefs {
		if strings.HasPrefix(s, h) {
			return true
		}
	}

	return false
}

// href returns s as link, bare domain becomes https link
func href(s string) string {
	if isHref(s) || strings.HasPrefix(s, "/") {
		return s
	}
	if strings.Contains(s, "@") {
		return "mailto:" + s
	}
	return "https://" + s
}
