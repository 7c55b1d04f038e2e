package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому хранится *gorm.DB в context
const DBContextKey = contextKey("db")

// IdentityContextKey - ключ для session.Identity текущего запроса
const IdentityContextKey = contextKey("identity")
