// Command intersectviz is a small debug server: post a junction's
// incident roads and get back its solved geometry as GeoJSON, for visual
// inspection while tuning the geometry kernel.
package main

import (
	"flag"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/osmstreets/intersectgeom/junction"
)

var (
	listenAddr = flag.String("listen", ":8090", "HTTP listening address")
	configPath = flag.String("config", "", "optional YAML config file path overriding ramp thresholds")

	logLevels = map[string]logrus.Level{
		"trace": logrus.TraceLevel,
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	}
	logLevel = flag.String("log.level", "info", "log level: trace debug info warn error")

	log = logrus.WithField("module", "intersectviz")
)

func main() {
	flag.Parse()

	level, ok := logLevels[*logLevel]
	if !ok {
		log.Fatalf("log.level must be one of %v", logLevels)
	}
	logrus.SetLevel(level)

	cfg := junction.DefaultConfig()
	if *configPath != "" {
		loaded, err := junction.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config file load err: %v", err)
		}
		cfg = loaded
	}

	h := &handler{cfg: cfg}

	log.Infof("listening on %s", *listenAddr)
	if err := fasthttp.ListenAndServe(*listenAddr, h.route); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

type handler struct {
	cfg *junction.Config
}

func (h *handler) route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		h.healthz(ctx)
	case "/solve":
		h.solve(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}

func (h *handler) healthz(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString("ok")
}

func (h *handler) solve(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		return
	}

	var req solveRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		ctx.SetBodyString(err.Error())
		return
	}

	cfg := h.cfg
	if req.RampMaxAngleDegrees != nil || req.RampMaxGapMeters != nil {
		merged := *h.cfg
		if req.RampMaxAngleDegrees != nil {
			merged.RampMaxAngleDegrees = *req.RampMaxAngleDegrees
		}
		if req.RampMaxGapMeters != nil {
			merged.RampMaxGapMeters = *req.RampMaxGapMeters
		}
		cfg = &merged
	}

	roads, err := req.toInputRoads()
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
		ctx.SetBodyString(err.Error())
		return
	}

	res, err := junction.Solve(junction.IntersectionID(req.IntersectionID), roads, nil, cfg)
	if err != nil {
		log.WithError(err).Debug("solve failed")
		ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
		ctx.SetBodyString(err.Error())
		return
	}

	originals := make(map[junction.RoadID]*junction.OriginalRoad, len(req.Roads))
	for _, r := range req.Roads {
		originals[junction.RoadID(r.ID)] = r.toOriginalRoad()
	}

	fc := collectionOf(res, func(id junction.RoadID) *junction.OriginalRoad {
		return originals[id]
	})

	body, err := json.Marshal(fc)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
