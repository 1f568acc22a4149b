package model

type Category struct {
	DTO
	Name     string `gorm:"not null;uniqueIndex" json:"name"`
	ParentId *uint  `json:"parentId,omitempty"`
}

type CategoryRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	ParentId *uint  `json:"parentId,omitempty"`
}
