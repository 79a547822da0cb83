// Package memory implementa los repositorios en memoria de proceso.
// Se usa con STORAGE_DRIVER=memory (demo local sin PostgreSQL) y en los tests de
// casos de uso y handlers. Respeta las mismas reglas que el esquema SQL: teléfonos
// y nombres de servicio únicos, claves foráneas sin cascada.
package memory

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/Salon-api/internal/domain/entity"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex // una transacción o una escritura suelta a la vez
	data state

	calls    atomic.Int64
	failures map[string]error
}

type state struct {
	roles        map[int]entity.Role
	users        map[int64]entity.User
	clients      map[int64]entity.Client
	masters      map[int64]entity.Master
	services     map[int64]entity.Service
	appointments map[int64]entity.Appointment
	payments     map[int64]entity.Payment
	seq          int64
}

// NewStore construye un almacén vacío (sin roles: se siembran con EnsureDefaults).
func NewStore() *Store {
	return &Store{
		data: state{
			roles:        map[int]entity.Role{},
			users:        map[int64]entity.User{},
			clients:      map[int64]entity.Client{},
			masters:      map[int64]entity.Master{},
			services:     map[int64]entity.Service{},
			appointments: map[int64]entity.Appointment{},
			payments:     map[int64]entity.Payment{},
		},
		failures: map[string]error{},
	}
}

// Calls número de operaciones de repositorio ejecutadas desde la creación.
func (s *Store) Calls() int64 { return s.calls.Load() }

// FailOn hace que la operación indicada (p. ej. "appointments.update_status") devuelva err.
// nil quita el fallo.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Counts filas por tabla; para tests y diagnóstico.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"roles":        len(s.data.roles),
		"users":        len(s.data.users),
		"clients":      len(s.data.clients),
		"masters":      len(s.data.masters),
		"services":     len(s.data.services),
		"appointments": len(s.data.appointments),
		"payments":     len(s.data.payments),
	}
}

// begin bloquea el estado para la operación op. Si hay un fallo inyectado para op
// lo devuelve sin dejar el lock tomado; si no, el llamador debe hacer s.mu.Unlock().
func (s *Store) begin(op string) error {
	s.calls.Add(1)
	s.mu.Lock()
	if err, ok := s.failures[op]; ok {
		s.mu.Unlock()
		return err
	}
	return nil
}

// write bloquea el estado para una escritura y devuelve cómo liberarlo.
// Fuera de una transacción espera también a que termine la transacción en curso,
// de modo que un rollback solo deshace cambios propios.
func (s *Store) write(op string, inTx bool) (func(), error) {
	if inTx {
		if err := s.begin(op); err != nil {
			return nil, err
		}
		return s.mu.Unlock, nil
	}
	s.txMu.Lock()
	if err := s.begin(op); err != nil {
		s.txMu.Unlock()
		return nil, err
	}
	return func() {
		s.mu.Unlock()
		s.txMu.Unlock()
	}, nil
}

func (s *Store) nextID() int64 {
	s.data.seq++
	return s.data.seq
}

func (st state) clone() state {
	out := state{
		roles:        make(map[int]entity.Role, len(st.roles)),
		users:        make(map[int64]entity.User, len(st.users)),
		clients:      make(map[int64]entity.Client, len(st.clients)),
		masters:      make(map[int64]entity.Master, len(st.masters)),
		services:     make(map[int64]entity.Service, len(st.services)),
		appointments: make(map[int64]entity.Appointment, len(st.appointments)),
		payments:     make(map[int64]entity.Payment, len(st.payments)),
		seq:          st.seq,
	}
	for k, v := range st.roles {
		out.roles[k] = v
	}
	for k, v := range st.users {
		out.users[k] = v
	}
	for k, v := range st.clients {
		out.clients[k] = v
	}
	for k, v := range st.masters {
		out.masters[k] = v
	}
	for k, v := range st.services {
		out.services[k] = v
	}
	for k, v := range st.appointments {
		out.appointments[k] = v
	}
	for k, v := range st.payments {
		out.payments[k] = v
	}
	return out
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
