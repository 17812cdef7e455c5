package service

import (
	"context"
	"sync"
	"time"

	"clinic/internal/domain"
)

// fakeStore держит всё состояние клиники в памяти под одним мьютексом и
// реализует интерфейсы репозиториев, сохраняя их транзакционную семантику.
type fakeStore struct {
	mu sync.Mutex

	doctors      map[int64]*domain.Doctor
	patients     map[int64]*domain.Patient
	schedules    map[int64]*domain.Schedule
	slots        map[int64]*domain.Slot
	appointments map[int64]*domain.Appointment
	records      map[int64]*domain.Record

	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		doctors:      make(map[int64]*domain.Doctor),
		patients:     make(map[int64]*domain.Patient),
		schedules:    make(map[int64]*domain.Schedule),
		slots:        make(map[int64]*domain.Slot),
		appointments: make(map[int64]*domain.Appointment),
		records:      make(map[int64]*domain.Record),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addDoctor(status domain.DoctorStatus) *domain.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor := &domain.Doctor{ID: s.id(), UserID: s.id(), Status: status}
	s.doctors[doctor.ID] = doctor
	return doctor
}

func (s *fakeStore) addPatient() *domain.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	patient := &domain.Patient{ID: s.id(), UserID: s.id()}
	s.patients[patient.ID] = patient
	return patient
}

func (s *fakeStore) addSlot(doctorID int64, start time.Time) *domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := &domain.Slot{
		ID:        s.id(),
		DoctorID:  doctorID,
		StartTime: start,
		EndTime:   start.Add(domain.SlotDuration),
		Status:    domain.SlotStatusFree,
	}
	s.slots[slot.ID] = slot
	return slot
}

// --- DoctorRepository ---

func (s *fakeStore) Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor := &domain.Doctor{
		ID:          s.id(),
		UserID:      dto.UserID,
		SpecialtyID: dto.SpecialtyID,
		Price:       dto.Price,
		Room:        dto.Room,
		Status:      domain.DoctorStatusActive,
	}
	s.doctors[doctor.ID] = doctor
	return doctor.ID, nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor, ok := s.doctors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doctor, nil
}

func (s *fakeStore) GetByUserID(ctx context.Context, userID int64) (*domain.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doctor := range s.doctors {
		if doctor.UserID == userID {
			return doctor, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeStore) Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doctors[id]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *fakeStore) List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Doctor
	for _, doctor := range s.doctors {
		out = append(out, *doctor)
	}
	return out, len(out), nil
}

// --- PatientRepository (через обёртку, имена методов совпадают с DoctorRepository) ---

type fakePatientRepo struct{ store *fakeStore }

func (r fakePatientRepo) Create(ctx context.Context, userID int64, dto domain.CreatePatientDTO, dob time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	patient := &domain.Patient{ID: r.store.id(), UserID: userID, DOB: dob, Gender: dto.Gender}
	r.store.patients[patient.ID] = patient
	return patient.ID, nil
}

func (r fakePatientRepo) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	patient, ok := r.store.patients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return patient, nil
}

func (r fakePatientRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, patient := range r.store.patients {
		if patient.UserID == userID {
			return patient, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r fakePatientRepo) Update(ctx context.Context, id int64, dto domain.UpdatePatientDTO) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.patients[id]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

// --- ScheduleRepository ---

type fakeScheduleRepo struct{ store *fakeStore }

func (r fakeScheduleRepo) CreateWithSlots(ctx context.Context, schedule domain.Schedule, slots []domain.Slot) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.schedules {
		if existing.DoctorID == schedule.DoctorID &&
			existing.WorkDate.Equal(schedule.WorkDate) &&
			existing.Shift == schedule.Shift {
			return 0, domain.ErrDuplicateShift
		}
	}

	schedule.ID = r.store.id()
	schedule.Status = domain.ScheduleStatusActive
	r.store.schedules[schedule.ID] = &schedule

	for i := range slots {
		slot := slots[i]
		slot.ID = r.store.id()
		slot.ScheduleID = schedule.ID
		r.store.slots[slot.ID] = &slot
	}

	return schedule.ID, nil
}

func (r fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	schedule, ok := r.store.schedules[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return schedule, nil
}

func (r fakeScheduleRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Schedule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.Schedule
	for _, schedule := range r.store.schedules {
		if schedule.DoctorID == doctorID {
			out = append(out, *schedule)
		}
	}
	return out, nil
}

func (r fakeScheduleRepo) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.schedules[id]; !ok {
		return 0, domain.ErrNotFound
	}

	scheduleSlots := make(map[int64]bool)
	for slotID, slot := range r.store.slots {
		if slot.ScheduleID == id {
			scheduleSlots[slotID] = true
		}
	}

	var cancelled int64
	for _, appointment := range r.store.appointments {
		if appointment.SlotID != nil && scheduleSlots[*appointment.SlotID] && !appointment.Status.Terminal() {
			appointment.Status = domain.AppointmentStatusCancelled
			cancelled++
		}
	}

	for slotID := range scheduleSlots {
		delete(r.store.slots, slotID)
	}
	delete(r.store.schedules, id)

	return cancelled, nil
}

// --- SlotRepository ---

type fakeSlotRepo struct{ store *fakeStore }

func (r fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	slot, ok := r.store.slots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *slot
	return &copied, nil
}

func (r fakeSlotRepo) ListByDoctor(ctx context.Context, doctorID int64, from, to time.Time) ([]domain.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.Slot
	for _, slot := range r.store.slots {
		if slot.DoctorID == doctorID && !slot.StartTime.Before(from) && slot.StartTime.Before(to) {
			out = append(out, *slot)
		}
	}
	return out, nil
}

// --- AppointmentRepository ---

type fakeAppointmentRepo struct{ store *fakeStore }

func (r fakeAppointmentRepo) CreateWithSlot(ctx context.Context, patientID, doctorID, slotID int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.slots[slotID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if slot.Status != domain.SlotStatusFree {
		return 0, domain.ErrSlotUnavailable
	}
	slot.Status = domain.SlotStatusBooked

	appointment := &domain.Appointment{
		ID:        r.store.id(),
		PatientID: patientID,
		DoctorID:  &doctorID,
		SlotID:    &slotID,
		Status:    domain.AppointmentStatusPending,
		CreatedAt: time.Now(),
	}
	r.store.appointments[appointment.ID] = appointment
	return appointment.ID, nil
}

func (r fakeAppointmentRepo) CreateForService(ctx context.Context, patientID, serviceID int64) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment := &domain.Appointment{
		ID:        r.store.id(),
		PatientID: patientID,
		ServiceID: &serviceID,
		Status:    domain.AppointmentStatusPending,
		CreatedAt: time.Now(),
	}
	r.store.appointments[appointment.ID] = appointment
	return appointment.ID, nil
}

func (r fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	appointment, ok := r.store.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (r fakeAppointmentRepo) UpdateStatus(ctx context.Context, id int64, from []domain.AppointmentStatus, to domain.AppointmentStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment, ok := r.store.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}

	for _, status := range from {
		if appointment.Status == status {
			appointment.Status = to
			return nil
		}
	}
	return domain.ErrInvalidState
}

func (r fakeAppointmentRepo) CancelAndRelease(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment, ok := r.store.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}
	if appointment.Status != domain.AppointmentStatusPending && appointment.Status != domain.AppointmentStatusConfirmed {
		return domain.ErrInvalidState
	}

	appointment.Status = domain.AppointmentStatusCancelled
	if appointment.SlotID != nil {
		if slot, ok := r.store.slots[*appointment.SlotID]; ok {
			slot.Status = domain.SlotStatusFree
		}
	}
	return nil
}

func (r fakeAppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.Appointment
	for _, appointment := range r.store.appointments {
		if filter.PatientID != nil && appointment.PatientID != *filter.PatientID {
			continue
		}
		if filter.DoctorID != nil && (appointment.DoctorID == nil || *appointment.DoctorID != *filter.DoctorID) {
			continue
		}
		if filter.Status != nil && appointment.Status != *filter.Status {
			continue
		}
		out = append(out, *appointment)
	}
	return out, nil
}

func (r fakeAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	list, err := r.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func (r fakeAppointmentRepo) CancelStalePending(ctx context.Context, now time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var cancelled int64
	for _, appointment := range r.store.appointments {
		if appointment.Status != domain.AppointmentStatusPending || appointment.SlotID == nil {
			continue
		}
		slot, ok := r.store.slots[*appointment.SlotID]
		if !ok || !slot.StartTime.Before(now) {
			continue
		}
		appointment.Status = domain.AppointmentStatusCancelled
		slot.Status = domain.SlotStatusFree
		cancelled++
	}
	return cancelled, nil
}

// --- RecordRepository ---

type fakeRecordRepo struct{ store *fakeStore }

func (r fakeRecordRepo) CompleteExamination(ctx context.Context, doctorID int64, dto domain.CompleteExaminationDTO, examDate time.Time, reExamDate *time.Time) (*domain.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment, ok := r.store.appointments[dto.AppointmentID]
	if !ok || appointment.DoctorID == nil || *appointment.DoctorID != doctorID {
		return nil, domain.ErrNotFound
	}

	if appointment.Status == domain.AppointmentStatusCompleted {
		return nil, domain.ErrAlreadyCompleted
	}
	if !appointment.Status.CanTransition(domain.AppointmentStatusCompleted) {
		return nil, domain.ErrInvalidState
	}

	record := &domain.Record{
		ID:            r.store.id(),
		DoctorID:      doctorID,
		PatientID:     appointment.PatientID,
		AppointmentID: dto.AppointmentID,
		ExamDate:      examDate,
		Diagnosis:     dto.Diagnosis,
		Symptoms:      dto.Symptoms,
		SOAPNotes:     dto.SOAPNotes,
		Prescription:  dto.Prescription,
		ReExamDate:    reExamDate,
		CreatedAt:     time.Now(),
	}
	r.store.records[record.ID] = record
	appointment.Status = domain.AppointmentStatusCompleted

	return record, nil
}

func (r fakeRecordRepo) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	record, ok := r.store.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (r fakeRecordRepo) GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, record := range r.store.records {
		if record.AppointmentID == appointmentID {
			return record, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r fakeRecordRepo) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.Record
	for _, record := range r.store.records {
		if filter.PatientID != nil && record.PatientID != *filter.PatientID {
			continue
		}
		if filter.DoctorID != nil && record.DoctorID != *filter.DoctorID {
			continue
		}
		out = append(out, *record)
	}
	return out, len(out), nil
}
