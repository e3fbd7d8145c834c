package api

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (POST /signup)
	PostSignup(w http.ResponseWriter, r *http.Request)
	// (POST /login)
	PostLogin(w http.ResponseWriter, r *http.Request)
	// (GET /users)
	GetUsers(w http.ResponseWriter, r *http.Request)
	// (DELETE /users)
	DeleteUsers(w http.ResponseWriter, r *http.Request)
	// (GET /users/{username})
	GetUser(w http.ResponseWriter, r *http.Request, username string)
	// (GET /cardholders/{cardNumber})
	GetCardholder(w http.ResponseWriter, r *http.Request, cardNumber string)
	// (GET /getUserBalance/{username})
	GetUserBalance(w http.ResponseWriter, r *http.Request, username string)
	// (GET /getCreditCardInfo/{username})
	GetCreditCardInfo(w http.ResponseWriter, r *http.Request, username string)
	// (POST /transfer)
	PostTransfer(w http.ResponseWriter, r *http.Request)
	// (GET /transactions)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	// (DELETE /transactions)
	DeleteTransactions(w http.ResponseWriter, r *http.Request)
	// (GET /transactions/{username})
	GetUserTransactions(w http.ResponseWriter, r *http.Request, username string)
	// (GET /transactions/latest/{username})
	GetLatestTransactions(w http.ResponseWriter, r *http.Request, username string)
}

// MiddlewareFunc wraps a single operation handler.
type MiddlewareFunc func(http.Handler) http.Handler

// ServeMux is the subset of *http.ServeMux the routes are registered on.
type ServeMux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

// StdHTTPServerOptions configures HandlerWithOptions.
type StdHTTPServerOptions struct {
	BaseRouter       ServeMux
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
	BaseURL          string
	Middlewares      []MiddlewareFunc
	// AdminRoutes registers the bulk DELETE operations.
	AdminRoutes bool
}

// InvalidParamFormatError is passed to ErrorHandlerFunc when a parameter cannot be bound.
type InvalidParamFormatError struct {
	Err       error
	ParamName string
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// ServerInterfaceWrapper converts HTTP requests to typed handler calls.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, handler http.Handler) {
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

// pathParam binds a simple-style path parameter into a string.
func (siw *ServerInterfaceWrapper) pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return "", false
	}
	return value, true
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetHealth))
}

// PostSignup operation middleware
func (siw *ServerInterfaceWrapper) PostSignup(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.PostSignup))
}

// PostLogin operation middleware
func (siw *ServerInterfaceWrapper) PostLogin(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.PostLogin))
}

// GetUsers operation middleware
func (siw *ServerInterfaceWrapper) GetUsers(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetUsers))
}

// DeleteUsers operation middleware
func (siw *ServerInterfaceWrapper) DeleteUsers(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.DeleteUsers))
}

// GetUser operation middleware
func (siw *ServerInterfaceWrapper) GetUser(w http.ResponseWriter, r *http.Request) {
	username, ok := siw.pathParam(w, r, "username")
	if !ok {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetUser(w, r, username)
	}))
}

// GetCardholder operation middleware
func (siw *ServerInterfaceWrapper) GetCardholder(w http.ResponseWriter, r *http.Request) {
	cardNumber, ok := siw.pathParam(w, r, "cardNumber")
	if !ok {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetCardholder(w, r, cardNumber)
	}))
}

// GetUserBalance operation middleware
func (siw *ServerInterfaceWrapper) GetUserBalance(w http.ResponseWriter, r *http.Request) {
	username, ok := siw.pathParam(w, r, "username")
	if !ok {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetUserBalance(w, r, username)
	}))
}

// GetCreditCardInfo operation middleware
func (siw *ServerInterfaceWrapper) GetCreditCardInfo(w http.ResponseWriter, r *http.Request) {
	username, ok := siw.pathParam(w, r, "username")
	if !ok {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetCreditCardInfo(w, r, username)
	}))
}

// PostTransfer operation middleware
func (siw *ServerInterfaceWrapper) PostTransfer(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.PostTransfer))
}

// GetTransactions operation middleware
func (siw *ServerInterfaceWrapper) GetTransactions(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetTransactions))
}

// DeleteTransactions operation middleware
func (siw *ServerInterfaceWrapper) DeleteTransactions(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.DeleteTransactions))
}

// GetUserTransactions operation middleware
func (siw *ServerInterfaceWrapper) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	username, ok := siw.pathParam(w, r, "username")
	if !ok {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetUserTransactions(w, r, username)
	}))
}

// GetLatestTransactions operation middleware
func (siw *ServerInterfaceWrapper) GetLatestTransactions(w http.ResponseWriter, r *http.Request) {
	username, ok := siw.pathParam(w, r, "username")
	if !ok {
		return
	}
	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetLatestTransactions(w, r, username)
	}))
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{})
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, m ServeMux) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseRouter: m,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options StdHTTPServerOptions) http.Handler {
	m := options.BaseRouter

	if m == nil {
		m = http.NewServeMux()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	m.HandleFunc("GET "+options.BaseURL+"/health", wrapper.GetHealth)
	m.HandleFunc("POST "+options.BaseURL+"/signup", wrapper.PostSignup)
	m.HandleFunc("POST "+options.BaseURL+"/login", wrapper.PostLogin)
	m.HandleFunc("GET "+options.BaseURL+"/users", wrapper.GetUsers)
	m.HandleFunc("GET "+options.BaseURL+"/users/{username}", wrapper.GetUser)
	m.HandleFunc("GET "+options.BaseURL+"/cardholders/{cardNumber}", wrapper.GetCardholder)
	m.HandleFunc("GET "+options.BaseURL+"/getUserBalance/{username}", wrapper.GetUserBalance)
	m.HandleFunc("GET "+options.BaseURL+"/getCreditCardInfo/{username}", wrapper.GetCreditCardInfo)
	m.HandleFunc("POST "+options.BaseURL+"/transfer", wrapper.PostTransfer)
	m.HandleFunc("GET "+options.BaseURL+"/transactions", wrapper.GetTransactions)
	m.HandleFunc("GET "+options.BaseURL+"/transactions/{username}", wrapper.GetUserTransactions)
	m.HandleFunc("GET "+options.BaseURL+"/transactions/latest/{username}", wrapper.GetLatestTransactions)

	if options.AdminRoutes {
		m.HandleFunc("DELETE "+options.BaseURL+"/users", wrapper.DeleteUsers)
		m.HandleFunc("DELETE "+options.BaseURL+"/transactions", wrapper.DeleteTransactions)
	}

	return m
}
