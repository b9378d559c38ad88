package schemas

// LoginSchema struct
type LoginSchema struct {
	Username string `validate:"required,min=1,max=32,alphanum"`
}

// RelationSchema struct
type RelationSchema struct {
	Username string `validate:"required,min=1,max=32,alphanum"`
	Target   string `validate:"required,min=1,max=32,alphanum"`
}

// ListResponseSchema struct
type ListResponseSchema struct {
	AllUsers  []string
	Followers []string
}
