package request

import "artshop/internal/usecase/commands"

type CreateArtworkRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       string  `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func (r CreateArtworkRequest) ToCommand() commands.CreateArtworkInput {
	return commands.CreateArtworkInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
	}
}

type UpdateArtworkRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func (r UpdateArtworkRequest) ToCommand() commands.UpdateArtworkInput {
	return commands.UpdateArtworkInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
	}
}
