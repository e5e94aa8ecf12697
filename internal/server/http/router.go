package httpserver

import "net/http"

// Server 把 /api/ 和静态页面挂到同一个 mux 上。
type Server struct {
	mux *http.ServeMux
	api *Handler
}

// NewServer webDir 为空时不挂静态文件
func NewServer(api *Handler, webDir string) *Server {
	if api == nil {
		api = NewHandler(nil)
	}
	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return &Server{mux: mux, api: api}
}

func (s *Server) Handler() *Handler { return s.api }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
