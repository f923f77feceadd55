package catalog

import (
	"ascend/internal/domain/entity"
)

// eraCatalog holds the predefined era templates. These are read-only; any
// per-user edits live in the profile's customization overlays and are merged
// at resolve time.
var eraCatalog = []entity.Era{
	{
		ID:                    "era-despertar",
		Name:                  "El Despertar",
		Description:           "Los primeros pasos del viaje: establece tus hábitos base y conoce tus límites.",
		CompletionDescription: "Has despertado. Tu rutina ya no te controla: tú la controlas.",
		Objectives: []entity.EraObjective{
			{ID: "despertar-obj-1", Description: "Crea tus tres primeros hábitos"},
			{ID: "despertar-obj-2", Description: "Registra una semana completa de sueño"},
			{ID: "despertar-obj-3", Description: "Define tu primera meta SMART"},
		},
		CompletionConditionText: "Completa tus objetivos iniciales y mantén tu primera racha.",
		SpecialMechanicsText:    "Sin mecánicas especiales: esta era se trata de empezar.",
		Rewards: []entity.EraReward{
			{ID: "despertar-rw-xp", Kind: entity.RewardKindXP, Description: "Impulso inicial", Value: 50},
			{ID: "despertar-rw-unlock", Kind: entity.RewardKindUnlock, Description: "Desbloquea el árbol de habilidades pasivas", Value: 0},
		},
		Theme:             entity.EraTheme{Icon: "sunrise", ColorToken: "amber"},
		NextEraID:         "era-forja",
		XPRequiredToStart: 0,
	},
	{
		ID:                    "era-forja",
		Name:                  "La Forja",
		Description:           "La disciplina se templa con repetición. Convierte intención en constancia.",
		CompletionDescription: "Forjado en la rutina diaria, tu carácter resiste la fricción.",
		Objectives: []entity.EraObjective{
			{ID: "forja-obj-1", Description: "Mantén una racha de catorce días en un hábito"},
			{ID: "forja-obj-2", Description: "Completa tres metas"},
		},
		CompletionConditionText: "Sostén tus hábitos durante dos semanas sin romper la cadena.",
		SpecialMechanicsText:    "Las rachas pesan el doble en tu atributo de constancia.",
		Rewards: []entity.EraReward{
			{ID: "forja-rw-xp", Kind: entity.RewardKindXP, Description: "Temple del herrero", Value: 100},
			{ID: "forja-rw-dom", Kind: entity.RewardKindXP, Description: "Dominio de la fragua", Value: 75, Dominating: true},
		},
		Theme:             entity.EraTheme{Icon: "hammer", ColorToken: "ember"},
		NextEraID:         "era-ascenso",
		XPRequiredToStart: 100,
	},
	{
		ID:                    "era-ascenso",
		Name:                  "El Ascenso",
		Description:           "Deja la base del valle. Cada hábito sostenido es un paso de altura.",
		CompletionDescription: "Miras atrás y el punto de partida apenas se distingue.",
		Objectives: []entity.EraObjective{
			{ID: "ascenso-obj-1", Description: "Alcanza el rango Disciplinado"},
			{ID: "ascenso-obj-2", Description: "Registra un mes de sueño con calidad media buena"},
			{ID: "ascenso-obj-3", Description: "Desbloquea dos habilidades pasivas"},
		},
		CompletionConditionText: "Demuestra progreso sostenido en todos los frentes.",
		SpecialMechanicsText:    "Las metas con fecha límite vencida restan presencia en el ascenso.",
		Rewards: []entity.EraReward{
			{ID: "ascenso-rw-xp", Kind: entity.RewardKindXP, Description: "Aire de cumbre", Value: 200},
			{ID: "ascenso-rw-item", Kind: entity.RewardKindItem, Description: "Estandarte del ascenso", Value: 1},
		},
		Theme:             entity.EraTheme{Icon: "mountain", ColorToken: "slate"},
		NextEraID:         "era-maestria",
		XPRequiredToStart: 300,
	},
	{
		ID:                    "era-maestria",
		Name:                  "La Maestría",
		Description:           "Ya no persigues hábitos: los habitas. Afina lo que otros apenas empiezan.",
		CompletionDescription: "La maestría no es un destino sino una forma de caminar.",
		Objectives: []entity.EraObjective{
			{ID: "maestria-obj-1", Description: "Mantén tres hábitos con racha simultánea de treinta días"},
			{ID: "maestria-obj-2", Description: "Completa diez metas"},
		},
		CompletionConditionText: "Sostén la excelencia hasta que deje de sentirse como esfuerzo.",
		SpecialMechanicsText:    "Los deslices de racha no reinician el progreso de la era.",
		Rewards: []entity.EraReward{
			{ID: "maestria-rw-xp", Kind: entity.RewardKindXP, Description: "Sello del maestro", Value: 400},
			{ID: "maestria-rw-dom", Kind: entity.RewardKindXP, Description: "Dominación absoluta", Value: 250, Dominating: true},
			{ID: "maestria-rw-boost", Kind: entity.RewardKindAttributeBoost, Description: "Bonificación de sabiduría", Value: 5},
		},
		Theme:             entity.EraTheme{Icon: "crown", ColorToken: "violet"},
		NextEraID:         "era-trascendencia",
		XPRequiredToStart: 800,
	},
	{
		ID:                      "era-trascendencia",
		Name:                    "La Trascendencia",
		Description:             "El sistema deja de ser necesario. Lo que construiste te sostiene solo.",
		CompletionDescription:   "Has trascendido el juego: el progreso ahora es tuyo, no de la aplicación.",
		Objectives:              []entity.EraObjective{},
		CompletionConditionText: "No hay condiciones explícitas. Tú sabrás cuándo.",
		SpecialMechanicsText:    "Era abierta sin objetivos: se completa por pura acumulación de experiencia.",
		Rewards: []entity.EraReward{
			{ID: "trascendencia-rw-xp", Kind: entity.RewardKindXP, Description: "Legado", Value: 1000},
		},
		Theme:             entity.EraTheme{Icon: "aurora", ColorToken: "iridescent"},
		XPRequiredToStart: 2000,
	},
}

// Eras returns the predefined era templates in narrative order.
func Eras() []entity.Era {
	return eraCatalog
}

// EraByID looks up a predefined era template by ID.
func EraByID(id string) (entity.Era, bool) {
	for _, era := range eraCatalog {
		if era.ID == id {
			return era, true
		}
	}

	return entity.Era{}, false
}
