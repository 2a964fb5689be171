package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rombit/repair-tracker/internal/models"
)

// MockClientCollection is a mock implementation of db.ClientCollection
type MockClientCollection struct {
	mock.Mock
}

func (m *MockClientCollection) InsertClient(ctx context.Context, client models.Client) (primitive.ObjectID, error) {
	args := m.Called(ctx, client)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockClientCollection) FindClients(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientCollection) FindClientByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientCollection) UpdateClient(ctx context.Context, id primitive.ObjectID, client models.Client) (int64, error) {
	args := m.Called(ctx, id, client)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientCollection) DeleteClient(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockDeviceCollection is a mock implementation of db.DeviceCollection
type MockDeviceCollection struct {
	mock.Mock
}

func (m *MockDeviceCollection) InsertDevice(ctx context.Context, device models.Device) (primitive.ObjectID, error) {
	args := m.Called(ctx, device)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockDeviceCollection) FindDevices(ctx context.Context) ([]models.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Device), args.Error(1)
}

func (m *MockDeviceCollection) FindDeviceByID(ctx context.Context, id primitive.ObjectID) (*models.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockDeviceCollection) FindDevicesByClient(ctx context.Context, clientID primitive.ObjectID) ([]models.Device, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Device), args.Error(1)
}

func (m *MockDeviceCollection) UpdateDevice(ctx context.Context, id primitive.ObjectID, device models.Device) (int64, error) {
	args := m.Called(ctx, id, device)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeviceCollection) DeleteDevice(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeviceCollection) DeleteDevicesByID(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockRepairCollection is a mock implementation of db.RepairCollection
type MockRepairCollection struct {
	mock.Mock
}

func (m *MockRepairCollection) InsertRepair(ctx context.Context, repair models.Repair) (primitive.ObjectID, error) {
	args := m.Called(ctx, repair)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockRepairCollection) FindRepairs(ctx context.Context) ([]models.Repair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Repair), args.Error(1)
}

func (m *MockRepairCollection) FindRepairByID(ctx context.Context, id primitive.ObjectID) (*models.Repair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Repair), args.Error(1)
}

func (m *MockRepairCollection) FindRepairsByDevice(ctx context.Context, deviceID primitive.ObjectID, excludeStatus models.Status) ([]models.Repair, error) {
	args := m.Called(ctx, deviceID, excludeStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Repair), args.Error(1)
}

func (m *MockRepairCollection) UpdateRepair(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepairCollection) DeleteRepair(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepairCollection) DeleteRepairsByDevice(ctx context.Context, deviceIDs []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, deviceIDs)
	return args.Get(0).(int64), args.Error(1)
}

// MockCounterCollection is a mock implementation of db.CounterCollection
type MockCounterCollection struct {
	mock.Mock
}

func (m *MockCounterCollection) NextSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
