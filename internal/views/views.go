package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"recruitment_backend/internal/session"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page - данные для любой страницы: текущий пользователь, сообщение об
// ошибке, введенные значения формы и содержимое страницы.
type Page struct {
	Title string
	User  session.Identity
	Error string
	Form  any
	Data  any
}

// ErrorPage - содержимое error.html
type ErrorPage struct {
	Status  int
	Message string
}

// Renderer реализует render.HTMLRender: каждая страница собирается
// вместе с общим layout в отдельный шаблон.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"lower": func(v any) string { return strings.ToLower(fmt.Sprint(v)) },
	"add":   func(a, b int) int { return a + b },
}

// New разбирает встроенные шаблоны.
func New() (*Renderer, error) {
	return Load(templateFS)
}

// Load разбирает шаблоны из fsys (каталог templates/).
func Load(fsys fs.FS) (*Renderer, error) {
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Instance - часть интерфейса render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		tmpl = r.pages["error"]
		data = Page{Title: "Error", Data: ErrorPage{Status: 500, Message: "Unknown page " + name}}
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}

// Has сообщает, есть ли страница с таким именем.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
