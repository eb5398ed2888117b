package response

import "remodeling_proposals/internal/usecase"

type ModelsResponse struct {
	Default   string   `json:"default"`
	Available []string `json:"available"`
}

func FromModelCatalog(m usecase.ModelCatalog) ModelsResponse {
	return ModelsResponse{Default: m.Default, Available: nonNilStrings(m.Available)}
}
