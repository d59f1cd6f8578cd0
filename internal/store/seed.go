package store

// Seed наполняет пустую галерею стартовыми курсами.
// Идемпотентен: существующие slug'и пропускаются.
func (s *Store) Seed() {
	seed := []struct {
		name string
		slug string
	}{
		{"Matematik", "matematik"},
		{"Fizik", "fizik"},
		{"Bilgisayar Bilimi", "bilgisayar"},
	}

	for _, c := range seed {
		if _, ok := s.GetCourseBySlug(c.slug); ok {
			continue
		}
		// Дубликат имени CreateCourse отвергнет сам
		_, _ = s.CreateCourse(c.name, c.slug)
	}
}
