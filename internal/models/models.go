package models

// All возвращает модели для миграции: родительские таблицы раньше дочерних.
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Company{},
		&JobSeeker{},
		&Job{},
		&Application{},
		&Session{},
	}
}
