package response_models

type PackageResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Inclusions  []string `json:"inclusions"`
}
