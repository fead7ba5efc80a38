package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

// CORS пропускает только запросы с сайтов из allowOrigins, куки разрешены.
// Запросы с чужим Origin получают 403. В preflight разрешаются те заголовки,
// которые запросил браузер.
func CORS(allowOrigins []string) ginext.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowOrigins))
	for _, o := range allowOrigins {
		allowed[strings.ToLower(o)] = struct{}{}
	}

	// AllowHeaders пустой: иначе cors перетрёт эхо своим списком.
	handler := cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *ginext.Context) {
		if c.Request.Method == http.MethodOptions {
			requested := c.Request.Header.Get("Access-Control-Request-Headers")
			if _, ok := allowed[c.Request.Header.Get("Origin")]; ok && requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(c)
	}
}
