package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"blogsphere/internal/config"
	"blogsphere/internal/service"
)

type Handlers struct {
	UserService    service.UserService
	PostService    service.PostService
	CommentService service.CommentService
	LikeService    service.LikeService
	ImageService   service.ImageService
	TablesService  service.TablesService
	Cfg            *config.Config
	Validate       *validator.Validate
	Log            logrus.FieldLogger
}

func NewHandlers(service *service.Service, config *config.Config, log logrus.FieldLogger) *Handlers {
	return &Handlers{
		UserService:    service.User,
		PostService:    service.Post,
		CommentService: service.Comment,
		LikeService:    service.Like,
		ImageService:   service.Image,
		TablesService:  service.Tables,
		Cfg:            config,
		Validate:       NewValidator(),
		Log:            log,
	}
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
