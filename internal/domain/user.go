package domain

// User maps the usuarios table. The order core only ever reads it: for the
// customer columns joined into order listings and for resolving the
// authenticated caller.
type User struct {
	ID             uint64  `json:"id" gorm:"column:ID_usuario;primaryKey;autoIncrement"`
	FirstName      string  `json:"nombre" gorm:"column:nombre;not null"`
	LastName       string  `json:"primer_apellido" gorm:"column:primer_apellido;not null"`
	SecondLastName *string `json:"segundo_apellido,omitempty" gorm:"column:segundo_apellido"`
	Email          string  `json:"email" gorm:"column:email;uniqueIndex;not null"`
	Phone          *string `json:"telefono,omitempty" gorm:"column:telefono"`
}

func (User) TableName() string { return "usuarios" }
