package attendant

import "ai-attendant-widget/pkg/store"

// DefaultCatalog is the built-in attendant list served when the backend has no
// /models endpoint or cannot be reached.
func DefaultCatalog() []store.AIModel {
	return []store.AIModel{
		{
			ID:          "asst_epSsBL4xTTSse7v2yqk9E4IA",
			Name:        "Atendente Gabriele",
			Description: "Assistente virtual especializada em odontologia",
			Status:      store.AIStatusOnline,
			Avatar:      "🦷",
			Specialties: []string{"Análise de Dados", "CRM", "Automação", "Odontologia"},
		},
		{
			ID:          "asst_sXKsda8Ff8XuITyeDjd4uidR",
			Name:        "Atendente Manu",
			Description: "Assistente virtual especializada em vendas de doces",
			Status:      store.AIStatusOnline,
			Avatar:      "🍬",
			Specialties: []string{"Estratégia", "Vendas", "Processos", "Doces"},
		},
		{
			ID:          "asst_GX31vSL1yjVYNRsLvsDJ5QOh",
			Name:        "Atendente Bárbara",
			Description: "Assistente virtual especializada em clínica vascular",
			Status:      store.AIStatusOnline,
			Avatar:      "🩺",
			Specialties: []string{"CRM", "Automação", "Clínica Vascular"},
		},
		{
			ID:          "asst_mmcn6qluOVCZYg8wTKV2VLBf",
			Name:        "Atendente Paulo",
			Description: "Assistente virtual especializada em remodelagem e acessórios automotivos",
			Status:      store.AIStatusOnline,
			Avatar:      "🚗",
			Specialties: []string{"Atendimento", "Remodelagem", "Acessórios"},
		},
	}
}
