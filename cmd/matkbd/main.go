package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	bconf "github.com/matkb/matkb/pkg/configs/backend"
	"github.com/matkb/matkb/pkg/domain/matkb"
	"github.com/matkb/matkb/pkg/utils/echoutil"
	"github.com/matkb/matkb/pkg/utils/filewatch"

	"github.com/matkb/matkb/cmd/matkbd/handlers"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := bconf.LoadBackendConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
	if err != nil {
		log.Fatalf("can not watch configration: %s", err)
	}
	defer cancel()
	context.AfterFunc(ctx, func() {
		log.Println("config file is updated. quit to restart server.")
		graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := e.Shutdown(graceful); err != nil {
			log.Printf("error on shutdown by config update: %s", err)
		}
	})

	m, err := matkb.Default(ctx, conf.Cluster())
	if err != nil {
		log.Fatalf("can not start matkb: %s", err)
	}
	defer m.Close(context.Background())

	go func() {
		if err := m.Flux().Run(ctx); err != nil && ctx.Err() == nil {
			e.Logger.Errorf("flux monitor stopped: %s", err)
		}
	}()

	api := root("/api")

	// handlers
	{
		e.GET(api("categories"), handlers.GetCategoriesHandler(m.Category()))
		e.POST(api("categories"), handlers.CategoryRegisterHandler(m.Category()))
		e.PUT(api("categories/:id/name"), handlers.CategoryRenameHandler(m.Category()))
		e.PUT(api("categories/:id/parent"), handlers.CategoryMoveHandler(m.Category()))
		e.DELETE(api("categories/:id"), handlers.CategoryDeleteHandler(m.Category()))
	}

	{
		e.GET(api("fields"), handlers.GetFieldsHandler(m.Field()))
		e.POST(api("fields"), handlers.FieldRegisterHandler(m.Field()))
		e.PUT(api("fields/order"), handlers.FieldReorderHandler(m.Field()))
		e.PUT(api("fields/:id"), handlers.FieldUpdateHandler(m.Field()))
		e.DELETE(api("fields/:id"), handlers.FieldDeleteHandler(m.Field()))
	}

	{
		e.GET(api("gallery"), handlers.GetGalleryHandler(m.Gallery()))
		e.POST(api("gallery"), handlers.GalleryRegisterHandler(m.Gallery()))
		e.PUT(api("gallery/:id"), handlers.GalleryUpdateHandler(m.Gallery()))
		e.DELETE(api("gallery/:id"), handlers.GalleryDeleteHandler(m.Gallery()))
	}

	{
		e.GET(api("feedback"), handlers.GetFeedbackHandler(m.Feedback()))
		e.GET(api("feedback/count"), handlers.GetFeedbackCountHandler(m.Feedback()))
		e.POST(api("feedback"), handlers.FeedbackEnqueueHandler(m.Feedback()))
		e.POST(api("feedback/pop"), handlers.FeedbackPopHandler(m.Feedback()))
	}

	{
		e.GET(api("cluster/pods"), handlers.GetPodsHandler(m.Cluster()))
		e.DELETE(api("cluster/pods/:name"), handlers.KillPodHandler(m.Cluster()))
		e.GET(api("cluster/events"), handlers.GetEventsHandler(m.Cluster()))
		e.PUT(api("cluster/deployments/:name/restart"), handlers.RestartDeploymentHandler(m.Cluster()))
		e.GET(api("cluster/flux"), handlers.GetFluxReportHandler(m.Flux()))
	}

	{
		e.GET(api("trainings"), handlers.FindTrainingHandler(m.Training()))
		e.POST(api("trainings"), handlers.TrainingRegisterHandler(m.Training()))
		e.GET(api("trainings/:id"), handlers.GetTrainingHandler(m.Training()))
		e.DELETE(api("trainings/:id"), handlers.TrainingDeleteHandler(m.Training(), m.Sessions()))

		e.PUT(api("trainings/:id/watch"), handlers.TrainingWatchHandler(m.Sessions()))
		e.DELETE(api("trainings/:id/watch"), handlers.TrainingUnwatchHandler(m.Sessions()))
		e.PUT(api("trainings/:id/reconnect"), handlers.TrainingReconnectHandler(m.Sessions()))
		e.GET(api("trainings/:id/telemetry"), handlers.GetTelemetryHandler(m.Sessions()))
		e.POST(api("trainings/:id/commands"), handlers.TrainingCommandHandler(m.Sessions()))
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	addr := fmt.Sprintf(":%d", conf.Port())
	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(addr, cert, key))
	} else {
		e.Logger.Fatal(e.Start(addr))
	}
}

// create api URL factory
//
// args:
//   - r: api root path
//
// return:
//   - func: it receive relative path from root, and returns full-path of URL.
func root(r string) func(...string) string {
	return func(s ...string) string {
		parts := make([]string, len(s)+1)
		parts[0] = r
		copy(parts[1:], s)
		joined := path.Join(parts...)
		if !strings.HasSuffix(joined, "/") {
			joined += "/"
		}
		return joined
	}
}
