package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
)

const OpenAPIPath = "/apidocs.json"

// RegisterOpenAPI must run after every other web service is added to the container.
func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Interprep API",
			Description: "Evaluates spoken explanations of coding interview solutions",
			Version:     apiVersion,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "evaluate", Description: "Transcript evaluation"}},
		{TagProps: spec.TagProps{Name: "transcribe", Description: "Speech to text"}},
		{TagProps: spec.TagProps{Name: "rubric", Description: "Scoring rubric"}},
		{TagProps: spec.TagProps{Name: "problems", Description: "Practice problem catalog"}},
		{TagProps: spec.TagProps{Name: "lessons", Description: "Study guidance per category"}},
	}
}
