package graph

import (
	"net/http"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/service"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.String},
		"name":      &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

// NewSchema builds the read-only query surface: users(limit: Int): [User],
// mirroring the REST list.
func NewSchema(users service.UserService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Args: graphql.FieldConfigArgument{
					"limit": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, _ := p.Args["limit"].(int)
					return users.ListUsers(p.Context, service.ListUsersQuery{Limit: limit})
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

func NewHandler(users service.UserService) (http.Handler, error) {
	schema, err := NewSchema(users)
	if err != nil {
		return nil, err
	}

	return handler.New(&handler.Config{
		Schema: &schema,
		Pretty: true,
	}), nil
}
