package pets

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pet-demo-api/internal/middleware"
	"pet-demo-api/internal/platform/apierror"
	"pet-demo-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.NotFound(apierror.NotFoundHandler)
		pr.MethodNotAllowed(apierror.MethodNotAllowedHandler)

		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log))

		// Carga de datos demo (fido/dog, kitty/cat)
		pr.Post("/demo", loadDemoHandler(svc, log))
		// /demo es estático: sin esto GET/PUT/DELETE caen en /{petID}
		for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
			pr.MethodFunc(m, "/demo", apierror.MethodNotAllowedHandler)
		}

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"fido"`
	Kind string `json:"kind" example:"dog"`
}

// messageResponse es la confirmación de POST /pets/demo.
type messageResponse struct {
	Message string `json:"message" example:"Created demo pets"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas en orden de creación. `kind` (o su alias `category`) filtra por igualdad exacta.
// @Tags pets
// @Produce json
// @Param kind query string false "Filtrar por kind"
// @Param category query string false "Alias de kind"
// @Success 200 {array} petResponse
// @Failure 500 {object} apierror.Envelope
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		// Igualdad exacta: el valor no se normaliza
		kind := q.Get("kind")
		if kind == "" {
			kind = q.Get("category")
		}

		reqLog(log, r).Debug("listing pets", map[string]any{"kind": kind})

		items, err := svc.List(r.Context(), kind)
		if err != nil {
			apierror.Write(w, apierror.Internal(err))
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		apierror.WriteJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} apierror.Envelope
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "petID")
		id, ok := parseID(raw)
		if !ok {
			apierror.Write(w, petNotFound(raw))
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, raw)
			return
		}

		apierror.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota. El ID lo asigna el servidor; un `id` en el body se ignora. `category` se acepta como alias de `kind`.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body PetRequest true "name y kind requeridos"
// @Success 201 {object} petResponse
// @Header 201 {string} Location "URL absoluta de la mascota creada"
// @Failure 400 {object} apierror.Envelope
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := reqLog(log, r)

		req, err := DecodePetRequest(r.Body)
		if err != nil {
			writeValidationError(w, l, err)
			return
		}

		p, err := svc.Create(r.Context(), req)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeValidationError(w, l, err)
				return
			}
			apierror.Write(w, apierror.Internal(err))
			return
		}

		l.Info("pet created", map[string]any{"pet_id": p.ID, "kind": p.Kind})

		w.Header().Set("Location", AbsoluteURL(r, fmt.Sprintf("/pets/%d", p.ID)))
		apierror.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplaza name y kind completos. El ID no cambia.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body PetRequest true "name y kind requeridos"
// @Success 200 {object} petResponse
// @Failure 400 {object} apierror.Envelope
// @Failure 404 {object} apierror.Envelope
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := reqLog(log, r)

		raw := chi.URLParam(r, "petID")
		id, ok := parseID(raw)
		if !ok {
			apierror.Write(w, petNotFound(raw))
			return
		}

		// 404 antes que 400: el body no se mira si la mascota no existe
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			writeServiceError(w, err, raw)
			return
		}

		req, err := DecodePetRequest(r.Body)
		if err != nil {
			writeValidationError(w, l, err)
			return
		}

		p, err := svc.Update(r.Context(), id, req)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeValidationError(w, l, err)
				return
			}
			writeServiceError(w, err, raw)
			return
		}

		l.Info("pet updated", map[string]any{"pet_id": p.ID})
		apierror.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Idempotente: borrar un ID inexistente también responde 204.
// @Tags pets
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "petID"))
		if ok {
			if err := svc.Delete(r.Context(), id); err != nil {
				apierror.Write(w, apierror.Internal(err))
				return
			}
			reqLog(log, r).Info("pet deleted", map[string]any{"pet_id": id})
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// loadDemoHandler godoc
// @Summary Cargar mascotas demo
// @Description Inserta fido (dog) y kitty (cat) con IDs nuevos.
// @Tags pets
// @Produce json
// @Success 201 {object} messageResponse
// @Router /pets/demo [post]
func loadDemoHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := svc.LoadDemo(r.Context())
		if err != nil {
			apierror.Write(w, apierror.Internal(err))
			return
		}

		reqLog(log, r).Info("demo pets loaded", map[string]any{"count": len(created)})
		apierror.WriteJSON(w, http.StatusCreated, messageResponse{Message: "Created demo pets"})
	}
}

// parseID acepta solo enteros positivos; cualquier otra cosa no existe.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func petNotFound(raw string) *apierror.Error {
	return apierror.NotFound(fmt.Sprintf("Pet with id: %s was not found", raw))
}

func writeServiceError(w http.ResponseWriter, err error, rawID string) {
	if errors.Is(err, ErrNotFound) {
		apierror.Write(w, petNotFound(rawID))
		return
	}
	apierror.Write(w, apierror.Internal(err))
}

// Las validaciones fallidas se loguean como warning y responden 400.
func writeValidationError(w http.ResponseWriter, l logger.Logger, err error) {
	l.Warn("invalid pet payload", map[string]any{"error": err.Error()})
	apierror.Write(w, apierror.BadRequest(err.Error(), err))
}

func reqLog(log logger.Logger, r *http.Request) logger.Logger {
	return log.With(map[string]any{"request_id": middleware.GetRequestID(r.Context())})
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:   p.ID,
		Name: p.Name,
		Kind: p.Kind,
	}
}

// AbsoluteURL arma una URL absoluta para path usando el host del request.
// Respeta X-Forwarded-Proto si hay un proxy delante.
func AbsoluteURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host + path
}
