package router

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares aplicados só nesta rota
}

type Router struct {
	router     *httprouter.Router
	registered map[string][]string
}

type ConfigRouter func(router *Router)

// New cria o router da API. Rotas inexistentes e métodos não suportados
// respondem no mesmo formato JSON de erro dos handlers.
func New(configs ...ConfigRouter) Router {
	router := &Router{
		router:     httprouter.New(),
		registered: map[string][]string{},
	}

	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado", map[string]string{
			"method": r.Method,
			"allow":  w.Header().Get("Allow"),
		})
	})

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.registered[route.Path] = append(r.registered[route.Path], route.Method)
	}
}

// Routes lista as rotas registradas no formato "METHOD path", ordenadas por caminho
func (r Router) Routes() []string {
	paths := make([]string, 0, len(r.registered))
	for path := range r.registered {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	routes := []string{}
	for _, path := range paths {
		for _, method := range r.registered[path] {
			routes = append(routes, method+" "+path)
		}
	}
	return routes
}
