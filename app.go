package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bverret/parasurf/pkg/config"
	"github.com/bverret/parasurf/pkg/engine"
	"github.com/bverret/parasurf/pkg/export"
	"github.com/bverret/parasurf/pkg/mesh"
	"github.com/bverret/parasurf/pkg/scene"
	"github.com/bverret/parasurf/pkg/tessellate"
)

// configFile is looked up relative to the working directory on startup.
const configFile = "parasurf.yaml"

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	cfg    *config.Config
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	UVs      []float32 `json:"uvs"`
	Normals  []float32 `json:"normals"`
	Tangents []float32 `json:"tangents"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with an engine and the on-disk configuration.
func NewApp() *App {
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Warn("falling back to default configuration", "err", err)
		cfg = config.Default()
	}
	eng := engine.NewEngine()
	eng.SetDefaults(scene.Defaults{SegsU: cfg.SegmentsU, SegsV: cfg.SegmentsV})
	return &App{
		engine: eng,
		cfg:    cfg,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes DSL source and returns mesh data + errors.
// This is the primary binding called by the frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	meshes := a.buildMeshes(source, &result)
	for i, m := range meshes {
		color := a.cfg.Palette[i%len(a.cfg.Palette)]
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			UVs:      m.UVs,
			Normals:  m.Normals,
			Tangents: m.Tangents,
			Indices:  m.Indices,
			Name:     m.Name,
			Color:    color,
		})
	}

	return result
}

// ExportSTL evaluates the source and writes every generated mesh to a
// single STL file. A bare file name is resolved against the configured
// export directory.
func (a *App) ExportSTL(source, name string) error {
	var result EvalResult
	meshes := a.buildMeshes(source, &result)
	if len(result.Errors) > 0 {
		return fmt.Errorf("export: %s", result.Errors[0].Message)
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.cfg.ExportDir, path)
	}
	if err := export.SaveSTL(path, meshes); err != nil {
		log.Error("STL export failed", "path", path, "err", err)
		return err
	}
	log.Info("STL exported", "path", path, "meshes", len(meshes))
	return nil
}

// buildMeshes runs the full pipeline: DSL source -> engine -> scene ->
// tessellate -> derived attributes. Problems are appended to result;
// a nil mesh slice means evaluation failed outright.
func (a *App) buildMeshes(source string, result *EvalResult) []*mesh.Mesh {
	// Step 1: Evaluate the DSL source into a scene.
	sc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Error("evaluate failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return nil
	}

	// Step 2: Convert eval errors to the frontend format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return nil
	}

	// Step 3: Validate the scene configuration before tessellating.
	fatal := false
	for _, p := range sc.Validate() {
		data := EvalErrorData{Message: p.Error()}
		if p.Severity == scene.SeverityError {
			result.Errors = append(result.Errors, data)
			fatal = true
		} else {
			result.Warnings = append(result.Warnings, data)
		}
	}
	if fatal {
		return nil
	}

	// Step 4: Tessellate each entry and derive render attributes.
	var meshes []*mesh.Mesh
	for _, e := range sc.Entries {
		m, err := tessellate.Generate(e.SegsU, e.SegsV, e.Surface)
		if err != nil {
			log.Error("tessellation failed", "entry", e.Name, "err", err)
			result.Errors = append(result.Errors, EvalErrorData{
				Message: fmt.Sprintf("%s: %v", e.Name, err),
			})
			continue
		}
		m.Name = e.Name
		m.ComputeNormals()
		m.ComputeTangents()
		meshes = append(meshes, m)
	}

	return meshes
}
