package http

import (
	"net/http"

	"github.com/go-openapi/spec"

	"usermgmt-api/internal/apidoc"
	"usermgmt-api/internal/transport/http/handler"
)

const (
	tagHealth = "Health"
	tagUsers  = "Users"
)

var userIDParam = apidoc.Param{
	Name:        "id",
	Type:        "integer",
	Format:      "int64",
	Description: "ID of the user",
}

func buildRoutes(users *handler.UserHandler) []route {
	return []route{
		{
			op: apidoc.Operation{
				Method: http.MethodGet, Path: "/health", ID: "health",
				Summary: "Health Check", Tag: tagHealth,
				Responses: map[int]apidoc.Response{
					http.StatusOK: {Description: "App is healthy", Schema: objectWith("status")},
				},
			},
			handle: handler.Health,
		},
		{
			op: apidoc.Operation{
				Method: http.MethodPost, Path: "/users", ID: "createUser",
				Summary: "Create a new user", Tag: tagUsers,
				Body: ref("UserInput"),
				Responses: map[int]apidoc.Response{
					http.StatusCreated:             {Description: "User created", Schema: ref("Message")},
					http.StatusInternalServerError: {Description: "Error creating user", Schema: ref("Message")},
				},
			},
			handle: users.Create,
		},
		{
			op: apidoc.Operation{
				Method: http.MethodGet, Path: "/users", ID: "listUsers",
				Summary: "Get all users", Tag: tagUsers,
				Responses: map[int]apidoc.Response{
					http.StatusOK:                  {Description: "A list of users", Schema: spec.ArrayProperty(ref("User"))},
					http.StatusInternalServerError: {Description: "Error getting users", Schema: ref("Message")},
				},
			},
			handle: users.List,
		},
		{
			op: apidoc.Operation{
				Method: http.MethodGet, Path: "/users/:id", ID: "getUser",
				Summary: "Get a user by ID", Tag: tagUsers,
				PathParams: []apidoc.Param{userIDParam},
				Responses: map[int]apidoc.Response{
					http.StatusOK:                  {Description: "User found", Schema: new(spec.Schema).Typed("object", "").SetProperty("user", *ref("User"))},
					http.StatusNotFound:            {Description: "User not found", Schema: ref("Message")},
					http.StatusInternalServerError: {Description: "Error getting user", Schema: ref("Message")},
				},
			},
			handle: users.Get,
		},
		{
			op: apidoc.Operation{
				Method: http.MethodPut, Path: "/users/:id", ID: "updateUser",
				Summary: "Update a user by ID", Tag: tagUsers,
				PathParams: []apidoc.Param{userIDParam},
				Body:       ref("UserInput"),
				Responses: map[int]apidoc.Response{
					http.StatusOK:                  {Description: "User updated", Schema: ref("Message")},
					http.StatusNotFound:            {Description: "User not found", Schema: ref("Message")},
					http.StatusInternalServerError: {Description: "Error updating user", Schema: ref("Message")},
				},
			},
			handle: users.Update,
		},
		{
			op: apidoc.Operation{
				Method: http.MethodDelete, Path: "/users/:id", ID: "deleteUser",
				Summary: "Delete a user by ID", Tag: tagUsers,
				PathParams: []apidoc.Param{userIDParam},
				Responses: map[int]apidoc.Response{
					http.StatusOK:                  {Description: "User deleted", Schema: ref("Message")},
					http.StatusNotFound:            {Description: "User not found", Schema: ref("Message")},
					http.StatusInternalServerError: {Description: "Error deleting user", Schema: ref("Message")},
				},
			},
			handle: users.Delete,
		},
	}
}

func definitions() spec.Definitions {
	user := new(spec.Schema).Typed("object", "").
		SetProperty("id", *spec.Int64Property()).
		SetProperty("username", *spec.StringProperty().WithMaxLength(80)).
		SetProperty("email", *spec.StringProperty().WithMaxLength(120)).
		WithRequired("id", "username", "email")

	input := new(spec.Schema).Typed("object", "").
		SetProperty("username", *spec.StringProperty().WithMaxLength(80)).
		SetProperty("email", *spec.StringProperty().WithMaxLength(120)).
		WithRequired("username", "email")

	return spec.Definitions{
		"User":      *user,
		"UserInput": *input,
		"Message":   *objectWith("message"),
	}
}

func ref(name string) *spec.Schema {
	return spec.RefSchema("#/definitions/" + name)
}

func objectWith(field string) *spec.Schema {
	return new(spec.Schema).Typed("object", "").SetProperty(field, *spec.StringProperty())
}
