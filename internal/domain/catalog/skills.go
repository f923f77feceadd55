package catalog

import (
	"ascend/internal/domain/entity"
)

var skillCatalog = []entity.PassiveSkill{
	{ID: "skill-madrugador", Name: "Madrugador", Cost: 50, Category: "Descanso", EffectDescription: "Los registros de sueño anteriores a las 23:00 cuentan como calidad superior."},
	{ID: "skill-enfoque", Name: "Enfoque Profundo", Cost: 75, Category: "Productividad", EffectDescription: "Resalta las metas con fecha límite próxima."},
	{ID: "skill-memoria", Name: "Memoria de Hierro", Cost: 100, Category: "Aprendizaje", EffectDescription: "Conserva el historial completo de rachas de cada hábito."},
	{ID: "skill-temple", Name: "Temple", Cost: 150, Category: "Disciplina", EffectDescription: "Un fallo aislado no rompe la racha visible de la semana."},
	{ID: "skill-cartografo", Name: "Cartógrafo de Eras", Cost: 200, Category: "Progresión", EffectDescription: "Permite previsualizar los objetivos de la siguiente era."},
	{ID: "skill-mecenas", Name: "Mecenas", Cost: 300, Category: "Progresión", EffectDescription: "Las eras creadas por ti otorgan una recompensa base mayor."},
}

// Skills returns the passive skill catalog in ascending cost order.
func Skills() []entity.PassiveSkill {
	return skillCatalog
}

// SkillByID looks up a passive skill by ID.
func SkillByID(id string) (entity.PassiveSkill, bool) {
	for _, s := range skillCatalog {
		if s.ID == id {
			return s, true
		}
	}

	return entity.PassiveSkill{}, false
}
