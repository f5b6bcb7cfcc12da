package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/copipaste/agencia-SGE/internal/domain/entity"
	"github.com/copipaste/agencia-SGE/pkg/logger"
	"github.com/copipaste/agencia-SGE/pkg/metrics"
)

// Shared metrics instance; promauto registers globally so tests reuse one.
var testMetrics = metrics.NewMetrics("agencia_test")

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (l nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return l
}

type fakeVentaRepo struct {
	ventas map[string]*entity.Venta
	err    error
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{ventas: make(map[string]*entity.Venta)}
}

func (r *fakeVentaRepo) Save(ctx context.Context, venta *entity.Venta) error {
	if r.err != nil {
		return r.err
	}
	if venta.ID == "" {
		venta.ID = fmt.Sprintf("venta-%d", len(r.ventas)+1)
	}
	r.ventas[venta.ID] = venta
	return nil
}

func (r *fakeVentaRepo) FindByID(ctx context.Context, id string) (*entity.Venta, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.ventas[id], nil
}

func (r *fakeVentaRepo) FindAll(ctx context.Context) ([]*entity.Venta, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVentaRepo) FindByClienteID(ctx context.Context, clienteID string) ([]*entity.Venta, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Venta
	for _, v := range r.ventas {
		if v.ClienteID == clienteID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) FindByAgenteID(ctx context.Context, agenteID string) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.ventas {
		if v.AgenteID == agenteID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) FindByEstado(ctx context.Context, estado entity.EstadoVenta) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.ventas {
		if v.EstadoVenta == estado {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) Update(ctx context.Context, venta *entity.Venta) error {
	if _, ok := r.ventas[venta.ID]; !ok {
		return errors.New("venta not found")
	}
	r.ventas[venta.ID] = venta
	return nil
}

func (r *fakeVentaRepo) Delete(ctx context.Context, id string) error {
	delete(r.ventas, id)
	return nil
}

type fakeDetalleRepo struct {
	detalles []*entity.DetalleVenta
}

func (r *fakeDetalleRepo) Save(ctx context.Context, detalle *entity.DetalleVenta) error {
	if detalle.ID == "" {
		detalle.ID = fmt.Sprintf("detalle-%d", len(r.detalles)+1)
	}
	r.detalles = append(r.detalles, detalle)
	return nil
}

func (r *fakeDetalleRepo) FindByVentaID(ctx context.Context, ventaID string) ([]*entity.DetalleVenta, error) {
	var out []*entity.DetalleVenta
	for _, d := range r.detalles {
		if d.VentaID == ventaID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDetalleRepo) DeleteByVentaID(ctx context.Context, ventaID string) error {
	kept := r.detalles[:0]
	for _, d := range r.detalles {
		if d.VentaID != ventaID {
			kept = append(kept, d)
		}
	}
	r.detalles = kept
	return nil
}

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[string]*entity.Cliente)}
}

func (r *fakeClienteRepo) Save(ctx context.Context, cliente *entity.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = fmt.Sprintf("cliente-%d", len(r.clientes)+1)
	}
	r.clientes[cliente.ID] = cliente
	return nil
}

func (r *fakeClienteRepo) FindByID(ctx context.Context, id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}

func (r *fakeClienteRepo) FindByUsuarioID(ctx context.Context, usuarioID string) (*entity.Cliente, error) {
	for _, c := range r.clientes {
		if c.UsuarioID == usuarioID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.clientes {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	r.clientes[cliente.ID] = cliente
	return nil
}

func (r *fakeClienteRepo) Delete(ctx context.Context, id string) error {
	delete(r.clientes, id)
	return nil
}

type fakeAgenteRepo struct {
	agentes map[string]*entity.Agente
}

func newFakeAgenteRepo() *fakeAgenteRepo {
	return &fakeAgenteRepo{agentes: make(map[string]*entity.Agente)}
}

func (r *fakeAgenteRepo) Save(ctx context.Context, agente *entity.Agente) error {
	if agente.ID == "" {
		agente.ID = fmt.Sprintf("agente-%d", len(r.agentes)+1)
	}
	r.agentes[agente.ID] = agente
	return nil
}

func (r *fakeAgenteRepo) FindByID(ctx context.Context, id string) (*entity.Agente, error) {
	return r.agentes[id], nil
}

func (r *fakeAgenteRepo) FindAll(ctx context.Context) ([]*entity.Agente, error) {
	var out []*entity.Agente
	for _, a := range r.agentes {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAgenteRepo) Update(ctx context.Context, agente *entity.Agente) error {
	r.agentes[agente.ID] = agente
	return nil
}

func (r *fakeAgenteRepo) Delete(ctx context.Context, id string) error {
	delete(r.agentes, id)
	return nil
}

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Save(ctx context.Context, usuario *entity.Usuario) error {
	if usuario.ID == "" {
		usuario.ID = fmt.Sprintf("usuario-%d", len(r.usuarios)+1)
	}
	r.usuarios[usuario.ID] = usuario
	return nil
}

func (r *fakeUsuarioRepo) FindByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.usuarios[id], nil
}

func (r *fakeUsuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindAll(ctx context.Context) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(ctx context.Context, usuario *entity.Usuario) error {
	r.usuarios[usuario.ID] = usuario
	return nil
}

func (r *fakeUsuarioRepo) UpdateFcmToken(ctx context.Context, id, token string) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("usuario not found")
	}
	u.FcmToken = token
	return nil
}

func (r *fakeUsuarioRepo) Delete(ctx context.Context, id string) error {
	delete(r.usuarios, id)
	return nil
}

type fakePaqueteRepo struct {
	paquetes map[string]*entity.PaqueteTuristico
	links    []*entity.PaqueteServicio
}

func newFakePaqueteRepo() *fakePaqueteRepo {
	return &fakePaqueteRepo{paquetes: make(map[string]*entity.PaqueteTuristico)}
}

func (r *fakePaqueteRepo) Save(ctx context.Context, paquete *entity.PaqueteTuristico) error {
	if paquete.ID == "" {
		paquete.ID = fmt.Sprintf("paquete-%d", len(r.paquetes)+1)
	}
	r.paquetes[paquete.ID] = paquete
	return nil
}

func (r *fakePaqueteRepo) FindByID(ctx context.Context, id string) (*entity.PaqueteTuristico, error) {
	return r.paquetes[id], nil
}

func (r *fakePaqueteRepo) FindAll(ctx context.Context) ([]*entity.PaqueteTuristico, error) {
	var out []*entity.PaqueteTuristico
	for _, p := range r.paquetes {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePaqueteRepo) Update(ctx context.Context, paquete *entity.PaqueteTuristico) error {
	r.paquetes[paquete.ID] = paquete
	return nil
}

func (r *fakePaqueteRepo) Delete(ctx context.Context, id string) error {
	delete(r.paquetes, id)
	return nil
}

func (r *fakePaqueteRepo) AddServicio(ctx context.Context, link *entity.PaqueteServicio) error {
	r.links = append(r.links, link)
	return nil
}

func (r *fakePaqueteRepo) FindServicios(ctx context.Context, paqueteID string) ([]*entity.PaqueteServicio, error) {
	var out []*entity.PaqueteServicio
	for _, l := range r.links {
		if l.PaqueteID == paqueteID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakePaqueteRepo) RemoveServicios(ctx context.Context, paqueteID string) error {
	kept := r.links[:0]
	for _, l := range r.links {
		if l.PaqueteID != paqueteID {
			kept = append(kept, l)
		}
	}
	r.links = kept
	return nil
}

type fakeAlertaRepo struct {
	alertas map[string]*entity.AlertaCancelacion
	saveErr error
}

func newFakeAlertaRepo() *fakeAlertaRepo {
	return &fakeAlertaRepo{alertas: make(map[string]*entity.AlertaCancelacion)}
}

func (r *fakeAlertaRepo) Save(ctx context.Context, alerta *entity.AlertaCancelacion) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if alerta.ID == "" {
		alerta.ID = fmt.Sprintf("alerta-%d", len(r.alertas)+1)
	}
	r.alertas[alerta.ID] = alerta
	return nil
}

func (r *fakeAlertaRepo) FindByVentaID(ctx context.Context, ventaID string) (*entity.AlertaCancelacion, error) {
	for _, a := range r.alertas {
		if a.VentaID == ventaID {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertaRepo) pendientes() []*entity.AlertaCancelacion {
	var out []*entity.AlertaCancelacion
	for _, a := range r.alertas {
		if !a.RecordatorioEnviado && a.EstadoVenta == entity.EstadoPendiente {
			out = append(out, a)
		}
	}
	return out
}

func (r *fakeAlertaRepo) FindPendientesEntre(ctx context.Context, inicio, fin time.Time) ([]*entity.AlertaCancelacion, error) {
	var out []*entity.AlertaCancelacion
	for _, a := range r.pendientes() {
		if !a.FechaVenta.Before(inicio) && !a.FechaVenta.After(fin) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAlertaRepo) FindPendientes(ctx context.Context) ([]*entity.AlertaCancelacion, error) {
	return r.pendientes(), nil
}

func (r *fakeAlertaRepo) CountPendientes(ctx context.Context) (int64, error) {
	return int64(len(r.pendientes())), nil
}

func (r *fakeAlertaRepo) MarcarRecordatorioEnviado(ctx context.Context, id string, enviadoAt time.Time) error {
	a, ok := r.alertas[id]
	if !ok {
		return errors.New("alerta not found")
	}
	a.RecordatorioEnviado = true
	a.FechaEnvioRecordatorio = &enviadoAt
	return nil
}

type fakePredictor struct {
	resp     *entity.PredictResponse
	err      error
	lastReq  *entity.PredictRequest
	lastFull *entity.PredictRequestFull
}

func (p *fakePredictor) Predict(ctx context.Context, req *entity.PredictRequest) (*entity.PredictResponse, error) {
	p.lastReq = req
	return p.resp, p.err
}

func (p *fakePredictor) PredictFull(ctx context.Context, req *entity.PredictRequestFull) (*entity.PredictResponse, error) {
	p.lastFull = req
	return p.resp, p.err
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakePush struct {
	sent []string
	err  error
}

func (p *fakePush) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, title)
	return nil
}
