package idmap_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsboot/internal/idmap"
	errs "nsboot/pkg/errors"
	"nsboot/pkg/os/osfakes"
)

func TestWriter_Apply_WritesInKernelOrder(t *testing.T) {
	fakeOs := &osfakes.FakeOsInterface{}
	w := idmap.NewWriterWithRoot(fakeOs, "/proc")

	err := w.Apply(4242, idmap.SingleID(1000, 1000))
	require.NoError(t, err)

	require.Equal(t, 3, fakeOs.WriteFileCallCount())

	path, data, _ := fakeOs.WriteFileArgsForCall(0)
	assert.Equal(t, "/proc/4242/setgroups", path)
	assert.Equal(t, "deny", string(data))

	path, data, _ = fakeOs.WriteFileArgsForCall(1)
	assert.Equal(t, "/proc/4242/gid_map", path)
	assert.Equal(t, "0 1000 1\n", string(data))

	path, data, _ = fakeOs.WriteFileArgsForCall(2)
	assert.Equal(t, "/proc/4242/uid_map", path)
	assert.Equal(t, "0 1000 1\n", string(data))
}

func TestWriter_Apply_OverlappingMappingWritesNothing(t *testing.T) {
	fakeOs := &osfakes.FakeOsInterface{}
	w := idmap.NewWriter(fakeOs)

	mapping := idmap.Mapping{
		UID: idmap.Table{{0, 1000, 1}, {0, 2000, 1}},
		GID: idmap.Table{{0, 1000, 1}},
	}

	err := w.Apply(4242, mapping)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidMapping))
	var mapErr *idmap.MapError
	require.True(t, errors.As(err, &mapErr))
	assert.Empty(t, mapErr.File)
	assert.Equal(t, 0, fakeOs.WriteFileCallCount())
	assert.Equal(t, 0, fakeOs.StatCallCount())

	// a rejected mapping does not consume the pid
	require.NoError(t, w.Apply(4242, idmap.SingleID(1000, 1000)))
}

func TestWriter_Apply_SecondCallIsRejected(t *testing.T) {
	fakeOs := &osfakes.FakeOsInterface{}
	w := idmap.NewWriter(fakeOs)

	require.NoError(t, w.Apply(77, idmap.SingleID(1000, 1000)))
	writes := fakeOs.WriteFileCallCount()

	err := w.Apply(77, idmap.SingleID(2000, 2000))

	assert.ErrorIs(t, err, errs.ErrAlreadyMapped)
	assert.Equal(t, writes, fakeOs.WriteFileCallCount())

	w.Release(77)
	assert.NoError(t, w.Apply(77, idmap.SingleID(1000, 1000)))
}

func TestWriter_Apply_MissingSetgroupsIsSkipped(t *testing.T) {
	fakeOs := &osfakes.FakeOsInterface{}
	fakeOs.StatStub = func(name string) (os.FileInfo, error) {
		if name == "/proc/9/setgroups" {
			return nil, os.ErrNotExist
		}
		return nil, nil
	}
	fakeOs.IsNotExistStub = func(err error) bool { return errors.Is(err, os.ErrNotExist) }
	w := idmap.NewWriter(fakeOs)

	require.NoError(t, w.Apply(9, idmap.SingleID(1000, 1000)))

	require.Equal(t, 2, fakeOs.WriteFileCallCount())
	path, _, _ := fakeOs.WriteFileArgsForCall(0)
	assert.Equal(t, "/proc/9/gid_map", path)
}

func TestWriter_Apply_MissingProcessTouchesNothing(t *testing.T) {
	fakeOs := &osfakes.FakeOsInterface{}
	fakeOs.StatReturns(nil, os.ErrNotExist)
	w := idmap.NewWriter(fakeOs)

	err := w.Apply(9, idmap.SingleID(1000, 1000))

	var mapErr *idmap.MapError
	require.True(t, errors.As(err, &mapErr))
	assert.Equal(t, "gid_map", mapErr.File)
	assert.Equal(t, 0, fakeOs.WriteFileCallCount())
}

func TestWriter_Apply_GidMapFailureStopsBeforeUidMap(t *testing.T) {
	fakeOs := &osfakes.FakeOsInterface{}
	fakeOs.WriteFileReturnsOnCall(1, os.ErrPermission)
	w := idmap.NewWriter(fakeOs)

	err := w.Apply(12, idmap.SingleID(1000, 1000))

	var mapErr *idmap.MapError
	require.True(t, errors.As(err, &mapErr))
	assert.Equal(t, "gid_map", mapErr.File)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, 2, fakeOs.WriteFileCallCount())

	assert.ErrorIs(t, w.Apply(12, idmap.SingleID(1000, 1000)), errs.ErrAlreadyMapped)
}

func TestWriter_Apply_RejectsInvalidPid(t *testing.T) {
	fakeOs := &osfakes.FakeOsInterface{}
	w := idmap.NewWriter(fakeOs)

	assert.ErrorIs(t, w.Apply(0, idmap.SingleID(1000, 1000)), errs.ErrInvalidMapping)
	assert.Equal(t, 0, fakeOs.WriteFileCallCount())
}
