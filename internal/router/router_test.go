package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"veterinaria-backend/internal/router"
)

// Recorre el ciclo de atención completo por HTTP, con los repos
// in-memory: registro, solicitud, triaje, consulta, diagnóstico,
// tratamiento, cierre y servicio auxiliar con resultado.
func TestHTTP_EndToEnd_CicloDeAtencion(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Logger: zerolog.Nop()}))
	defer ts.Close()

	// 1) Catálogos base
	razaID := createAndGetID(t, ts.URL, "/api/v1/catalogos/razas", map[string]any{
		"nombre_raza": "Mestizo",
	})
	patologiaID := createAndGetID(t, ts.URL, "/api/v1/catalogos/patologias", map[string]any{
		"nombre_patologia": "Parvovirus",
		"especie_afecta":   "Dog",
		"gravedad":         "Severe",
		"es_contagiosa":    true,
	})
	tipoServicioID := createAndGetID(t, ts.URL, "/api/v1/catalogos/tipos-servicio", map[string]any{
		"descripcion": "Laboratorio",
	})
	servicioID := createAndGetID(t, ts.URL, "/api/v1/catalogos/servicios", map[string]any{
		"id_tipo_servicio": tipoServicioID,
		"nombre_servicio":  "Hemograma completo",
		"precio":           80.0,
	})

	// 2) Personas
	clienteID := createAndGetID(t, ts.URL, "/api/v1/clientes", map[string]any{
		"nombre":           "Ana",
		"apellido_paterno": "Ramirez",
		"dni":              "12345678",
		"telefono":         "987654321",
		"email":            "ana@example.com",
	})
	recepID := createAndGetID(t, ts.URL, "/api/v1/recepcionistas", map[string]any{
		"nombre":           "Lucia",
		"apellido_paterno": "Torres",
		"dni":              "11112222",
		"telefono":         "911122233",
		"email":            "lucia@example.com",
		"turno":            "Morning",
	})
	vetID := createAndGetID(t, ts.URL, "/api/v1/veterinarios", map[string]any{
		"codigo_cmvp":      "CMVP-001",
		"tipo_veterinario": "GeneralMedicine",
		"nombre":           "Carlos",
		"apellido_paterno": "Quispe",
		"dni":              "33334444",
		"telefono":         "955566677",
		"email":            "carlos@example.com",
		"turno":            "Morning",
	})

	// 3) Mascota de la clienta
	mascotaID := createAndGetID(t, ts.URL, "/api/v1/mascotas", map[string]any{
		"id_cliente": clienteID,
		"id_raza":    razaID,
		"nombre":     "Firulais",
		"sexo":       "Male",
		"edad_anios": 2,
		"edad_meses": 3,
	})

	// 4) Solicitud de emergencia, nace Pending
	var solicitud map[string]any
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/solicitudes", map[string]any{
			"id_mascota":       mascotaID,
			"id_recepcionista": recepID,
			"tipo_solicitud":   "Emergency",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating solicitud, got %d body=%s", st, body)
		}
		solicitud = unmarshal(t, body)
		if got := solicitud["estado"]; got != "Pending" {
			t.Fatalf("expected solicitud Pending, got %v", got)
		}
	}
	solicitudID := solicitud["id"].(string)

	// 5) Triaje: la solicitud pasa a InTriage
	var triajeID string
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/triajes", map[string]any{
			"id_solicitud":                solicitudID,
			"id_veterinario":              vetID,
			"peso_mascota":                12.5,
			"latido_por_minuto":           110,
			"frecuencia_respiratoria_rpm": 25,
			"temperatura":                 38.2,
			"frecuencia_pulso":            100,
			"clasificacion_urgencia":      "Urgent",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating triaje, got %d body=%s", st, body)
		}
		triajeID = unmarshal(t, body)["id_triaje"].(string)

		assertField(t, ts.URL, "/api/v1/solicitudes/"+solicitudID, "estado", "InTriage")
	}

	// 6) Triaje duplicado sobre la misma solicitud -> 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/v1/triajes", map[string]any{
			"id_solicitud":                solicitudID,
			"id_veterinario":              vetID,
			"peso_mascota":                12.5,
			"latido_por_minuto":           110,
			"frecuencia_respiratoria_rpm": 25,
			"temperatura":                 38.2,
			"frecuencia_pulso":            100,
			"clasificacion_urgencia":      "Urgent",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for duplicate triaje, got %d", st)
		}
	}

	// 7) Consulta: veterinario Busy, solicitud InCare
	var consultaID string
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/consultas", map[string]any{
			"id_triaje":         triajeID,
			"id_veterinario":    vetID,
			"tipo_consulta":     "Emergencia digestiva",
			"motivo_consulta":   "Vomitos y decaimiento",
			"condicion_general": "Regular",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating consulta, got %d body=%s", st, body)
		}
		consultaID = unmarshal(t, body)["id_consulta"].(string)

		assertField(t, ts.URL, "/api/v1/veterinarios/"+vetID, "disposicion", "Busy")
		assertField(t, ts.URL, "/api/v1/solicitudes/"+solicitudID, "estado", "InCare")
	}

	// 8) Diagnóstico presuntivo de Parvovirus
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/consultas/"+consultaID+"/diagnosticos", map[string]any{
			"id_patologia": patologiaID,
			"diagnostico":  "Cuadro compatible con parvovirosis canina",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating diagnostico, got %d body=%s", st, body)
		}
		if got := unmarshal(t, body)["tipo_diagnostico"]; got != "Presumptive" {
			t.Fatalf("expected diagnostico Presumptive by default, got %v", got)
		}
	}

	// 9) Tratamiento con medicación
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/consultas/"+consultaID+"/tratamientos", map[string]any{
			"id_patologia":     patologiaID,
			"tipo_tratamiento": "Medication",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating tratamiento, got %d body=%s", st, body)
		}
	}

	// 10) Finalizar: veterinario Free, solicitud Completed. Repetir la
	// llamada no cambia nada.
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "PATCH", "/api/v1/consultas/"+consultaID+"/finalizar", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 finalizing consulta (try %d), got %d body=%s", i+1, st, body)
		}
	}
	assertField(t, ts.URL, "/api/v1/veterinarios/"+vetID, "disposicion", "Free")
	assertField(t, ts.URL, "/api/v1/solicitudes/"+solicitudID, "estado", "Completed")

	// 11) Vista completa con los tres eventos de historial
	{
		st, body := doReq(t, ts.URL, "GET", "/api/v1/consultas/"+consultaID+"/completa", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 consulta completa, got %d body=%s", st, body)
		}
		full := unmarshal(t, body)
		for _, lado := range []string{"triaje", "solicitud", "mascota", "veterinario"} {
			if full[lado] == nil {
				t.Fatalf("expected %s in consulta completa, got null", lado)
			}
		}
		eventos, ok := full["eventos_historial"].([]any)
		if !ok || len(eventos) < 3 {
			t.Fatalf("expected >= 3 eventos_historial, got %v", full["eventos_historial"])
		}
	}

	// 12) Servicio auxiliar con cita y resultado
	var citaID string
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/consultas/"+consultaID+"/servicio-cita", map[string]any{
			"id_servicio":           servicioID,
			"id_veterinario":        vetID,
			"fecha_hora_programada": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating servicio-cita, got %d body=%s", st, body)
		}
		pair := unmarshal(t, body)
		cita, ok := pair["cita"].(map[string]any)
		if !ok {
			t.Fatalf("expected cita in response, got %s", body)
		}
		if got := cita["estado_cita"]; got != "Scheduled" {
			t.Fatalf("expected cita Scheduled, got %v", got)
		}
		if got := cita["id_mascota"]; got != mascotaID {
			t.Fatalf("expected cita for mascota %s, got %v", mascotaID, got)
		}
		citaID = cita["id_cita"].(string)
	}
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/v1/citas/"+citaID+"/resultado", map[string]any{
			"id_veterinario": vetID,
			"resultado":      "Hemograma dentro de parametros normales",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 registering resultado, got %d body=%s", st, body)
		}
		assertField(t, ts.URL, "/api/v1/citas/"+citaID, "estado_cita", "Completed")
	}

	// 13) Historial de la mascota acumula todos los eventos
	{
		st, body := doReq(t, ts.URL, "GET", "/api/v1/mascotas/"+mascotaID+"/historial", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 historial, got %d body=%s", st, body)
		}
		var eventos []map[string]any
		if err := json.Unmarshal(body, &eventos); err != nil {
			t.Fatalf("unmarshal historial: %v body=%s", err, body)
		}
		if len(eventos) < 4 {
			t.Fatalf("expected >= 4 eventos en historial, got %d", len(eventos))
		}
	}
}

func TestHTTP_ErroresMapeados(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Logger: zerolog.Nop()}))
	defer ts.Close()

	// Recurso inexistente -> 404 con detail
	{
		st, body := doReq(t, ts.URL, "GET", "/api/v1/solicitudes/no-existe", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
		if unmarshal(t, body)["detail"] == nil {
			t.Fatalf("expected detail in error body, got %s", body)
		}
	}

	// Payload inválido -> 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/v1/clientes", map[string]any{
			"nombre":           "Ana",
			"apellido_paterno": "Ramirez",
			"dni":              "123", // corto
			"telefono":         "987654321",
			"email":            "ana@example.com",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", st)
		}
	}

	// DNI duplicado -> 409
	{
		payload := map[string]any{
			"nombre":           "Ana",
			"apellido_paterno": "Ramirez",
			"dni":              "12345678",
			"telefono":         "987654321",
			"email":            "ana@example.com",
		}
		st, body := doReq(t, ts.URL, "POST", "/api/v1/clientes", payload)
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, body)
		}
		payload["email"] = "otra@example.com"
		st, _ = doReq(t, ts.URL, "POST", "/api/v1/clientes", payload)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for duplicate dni, got %d", st)
		}
	}
}

func TestHTTP_ListadosPaginados(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Logger: zerolog.Nop()}))
	defer ts.Close()

	for i := 1; i <= 3; i++ {
		st, body := doReq(t, ts.URL, "POST", "/api/v1/clientes", map[string]any{
			"nombre":           "Cliente",
			"apellido_paterno": "Prueba",
			"dni":              fmt.Sprintf("1000000%d", i),
			"telefono":         fmt.Sprintf("90000000%d", i),
			"email":            fmt.Sprintf("cliente%d@example.com", i),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 seeding cliente %d, got %d body=%s", i, st, body)
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/api/v1/clientes?page=2&per_page=2", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	resp := unmarshal(t, body)
	if resp["total"] != float64(3) || resp["page"] != float64(2) || resp["total_pages"] != float64(2) {
		t.Fatalf("unexpected envelope: %s", body)
	}
	items, ok := resp["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 item on page 2, got %v", resp["items"])
	}
}

func doReq(t *testing.T, base, method, path string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, base+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

func unmarshal(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, body)
	}
	return m
}

func assertField(t *testing.T, base, path, field, want string) {
	t.Helper()
	st, body := doReq(t, base, "GET", path, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 on %s, got %d body=%s", path, st, body)
	}
	if got := unmarshal(t, body)[field]; got != want {
		t.Fatalf("expected %s=%s on %s, got %v", field, want, path, got)
	}
}

func createAndGetID(t *testing.T, base, path string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, base, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 on %s, got %d body=%s", path, st, body)
	}
	id, ok := unmarshal(t, body)["id"].(string)
	if !ok {
		t.Fatalf("expected id in response from %s, got %s", path, body)
	}
	return id
}
