package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
	"github.com/taibuivan/bookstore/internal/platform/respond"
)

// MsgDeleted is the confirmation body of a successful DELETE.
const MsgDeleted = "Book deleted"

type bookResponse struct {
	Book *Book `json:"book"`
}

type listResponse struct {
	Books []*Book `json:"books"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /books sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listBooks)
	router.Post("/", handler.createBook)
	router.Get("/{isbn}", handler.getBook)
	router.Put("/{isbn}", handler.updateBook)
	router.Delete("/{isbn}", handler.deleteBook)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listResponse{Books: books})
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	isbn := requestutil.Param(request, "isbn")

	book, err := handler.service.GetBook(request.Context(), isbn)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, bookResponse{Book: book})
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	input, err := requestutil.DecodeObject(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, bookResponse{Book: book})
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	isbn := requestutil.Param(request, "isbn")

	input, err := requestutil.DecodeObject(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.UpdateBook(request.Context(), isbn, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, bookResponse{Book: book})
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	isbn := requestutil.Param(request, "isbn")

	if err := handler.service.DeleteBook(request.Context(), isbn); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, messageResponse{Message: MsgDeleted})
}
