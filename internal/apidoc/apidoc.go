// Package apidoc assembles a Swagger 2.0 document from a static route table
// and renders the Swagger UI page that displays it.
package apidoc

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-openapi/spec"
)

type Info struct {
	Title        string
	Description  string
	Version      string
	Organization string
	Developer    string
	Email        string
	URL          string
	Schemes      []string
}

// Operation documents one method on one route. Path uses gin syntax (/users/:id).
type Operation struct {
	Method     string
	Path       string
	ID         string
	Summary    string
	Tag        string
	PathParams []Param
	Body       *spec.Schema
	Responses  map[int]Response
}

type Param struct {
	Name        string
	Type        string
	Format      string
	Description string
}

type Response struct {
	Description string
	Schema      *spec.Schema
}

// Build returns the document for ops. definitions are published under #/definitions.
func Build(info Info, definitions spec.Definitions, ops []Operation) *spec.Swagger {
	doc := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:       info.Title,
					Description: info.Description,
					Version:     info.Version,
					Contact: &spec.ContactInfo{
						ContactInfoProps: spec.ContactInfoProps{
							Name:  info.Developer,
							Email: info.Email,
							URL:   info.URL,
						},
					},
				},
			},
			BasePath:    "/",
			Schemes:     info.Schemes,
			Consumes:    []string{"application/json"},
			Produces:    []string{"application/json"},
			Paths:       &spec.Paths{Paths: map[string]spec.PathItem{}},
			Definitions: definitions,
		},
	}
	if info.Organization != "" {
		doc.Info.AddExtension("x-responsible-organization", info.Organization)
	}

	for _, op := range ops {
		path := SwaggerPath(op.Path)
		item := doc.Paths.Paths[path]
		o := buildOperation(op)
		switch strings.ToUpper(op.Method) {
		case http.MethodGet:
			item.Get = o
		case http.MethodPost:
			item.Post = o
		case http.MethodPut:
			item.Put = o
		case http.MethodPatch:
			item.Patch = o
		case http.MethodDelete:
			item.Delete = o
		}
		doc.Paths.Paths[path] = item
	}
	return doc
}

func buildOperation(op Operation) *spec.Operation {
	o := spec.NewOperation(op.ID).WithSummary(op.Summary)
	if op.Tag != "" {
		o.WithTags(op.Tag)
	}
	for _, p := range op.PathParams {
		o.AddParam(spec.PathParam(p.Name).Typed(p.Type, p.Format).WithDescription(p.Description))
	}
	if op.Body != nil {
		o.AddParam(spec.BodyParam("body", op.Body).AsRequired())
	}

	codes := make([]int, 0, len(op.Responses))
	for code := range op.Responses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		r := op.Responses[code]
		resp := spec.NewResponse().WithDescription(r.Description)
		if r.Schema != nil {
			resp.WithSchema(r.Schema)
		}
		o.RespondsWith(code, resp)
	}
	return o
}

// SwaggerPath rewrites gin path parameters (:id) into template form ({id}).
func SwaggerPath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}
