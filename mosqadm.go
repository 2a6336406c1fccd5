// Package mosqadm assembles the broker auth administration service: an HTTP
// API for managing the users and acl tables a mosquitto auth plugin reads.
package mosqadm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"

	"github.com/mqtt-tools/mosqadm/api/adminapi"
	"github.com/mqtt-tools/mosqadm/storage/model"
)

// FiberServerConfig is the fiber.Config that is used to init the http fiber.App
var FiberServerConfig = fiber.Config{
	ReadTimeout:    3 * time.Second,
	WriteTimeout:   20 * time.Second,
	IdleTimeout:    150 * time.Second,
	ReadBufferSize: 8192,
	ErrorHandler:   handleError,
	Network:        "tcp",
}

// handleError is the fiber error handler of last resort. Typed failures are
// already shaped inside the handlers; anything arriving here is unexpected
// and becomes a bare 500.
func handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).SendString(fe.Message)
	}
	log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
}

// Service is the admin HTTP service over a broker auth database.
type Service struct {
	server     *fiber.App
	serverConf ServerConf
}

// NewService builds the fiber app and mounts the admin API on top of the
// passed storage backends.
func NewService(serverConf ServerConf, storages model.Backends) *Service {
	if tps := serverConf.TrustedProxies; len(tps) > 0 {
		FiberServerConfig.TrustedProxies = tps
		FiberServerConfig.EnableTrustedProxyCheck = true
	}
	FiberServerConfig.ProxyHeader = serverConf.ForwardedIPHeader
	server := fiber.New(FiberServerConfig)
	server.Use(recover.New())
	server.Use(compress.New())
	server.Use(cors.New())
	server.Use(logger.New())
	server.Use(requestid.New())

	adminapi.Register(server.Group("/api"), storages)

	return &Service{
		server:     server,
		serverConf: serverConf,
	}
}

// HttpHandlerFunc returns an http.HandlerFunc for serving all the necessary
// endpoints
func (s *Service) HttpHandlerFunc() http.HandlerFunc {
	return adaptor.FiberApp(s.server)
}

// Listen starts an http server at the specific address for serving all the
// necessary endpoints
func (s *Service) Listen(addr string) error {
	return s.server.Listen(addr)
}

// Start serves the admin API according to the ServerConf, blocking forever.
func (s *Service) Start() {
	conf := s.serverConf
	if !conf.TLS.Enabled {
		log.WithField("port", conf.Port).Info("TLS is disabled, starting http server")
		log.WithError(s.server.Listen(fmt.Sprintf(":%d", conf.Port))).Fatal()
	}
	// TLS enabled
	if conf.TLS.RedirectHTTP {
		httpServer := fiber.New(FiberServerConfig)
		httpServer.All(
			"*", func(ctx *fiber.Ctx) error {
				//goland:noinspection HttpUrlsUsage
				return ctx.Redirect(
					strings.Replace(ctx.Request().URI().String(), "http://", "https://", 1),
					fiber.StatusPermanentRedirect,
				)
			},
		)
		log.Info("TLS and http redirect enabled, starting redirect server on port 80")
		go func() {
			log.WithError(httpServer.Listen(":80")).Fatal()
		}()
	}
	log.Info("TLS enabled, starting https server on port 443")
	log.WithError(s.server.ListenTLS(":443", conf.TLS.Cert, conf.TLS.Key)).Fatal()
}
