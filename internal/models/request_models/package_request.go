package request_models

type CreatePackageRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Inclusions  []string `json:"inclusions"`
}
