package domain

// Customer mirrors a planned "customer" collection. No endpoint writes or
// reads it yet; the schema is kept so the order checkout can grow into it.
type Customer struct {
	Name     string `json:"name" bson:"name" binding:"required"`
	Phone    string `json:"phone" bson:"phone" binding:"required,min=6,max=20"`
	Email    string `json:"email" bson:"email" binding:"omitempty,email"`
	Address  string `json:"address" bson:"address" binding:"required"`
	District string `json:"district" bson:"district"`
}
