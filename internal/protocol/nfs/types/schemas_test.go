package types_test

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/marmos91/nfswire/internal/protocol/nfs/types"
	"github.com/marmos91/nfswire/internal/protocol/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFattr3() types.Fattr3 {
	return types.Fattr3{
		Type:   types.NF3Reg,
		Mode:   0644,
		Nlink:  1,
		UID:    1000,
		GID:    1000,
		Size:   1234,
		Used:   4096,
		Rdev:   types.Specdata3{},
		Fsid:   7,
		Fileid: 99,
		Atime:  types.NFSTime3{Seconds: 1700000000, Nseconds: 0},
		Mtime:  types.NFSTime3{Seconds: 1700000100, Nseconds: 500},
		Ctime:  types.NFSTime3{Seconds: 1700000200, Nseconds: 999999999},
	}
}

func sampleHandle() types.FileHandle3 {
	return types.FileHandle3{Data: []byte{0xde, 0xad, 0xbe, 0xef, 1, 2, 3, 4}}
}

// sampleValues holds one representative value per registered wire type,
// with every optional populated so the round trip covers the widest
// encoding of each schema.
func sampleValues() map[string]any {
	attrs := sampleFattr3()
	fh := sampleHandle()

	return map[string]any{
		"specdata3": types.Specdata3{Specdata1: 1, Specdata2: 2},
		"nfstime3":  types.NFSTime3{Seconds: 10, Nseconds: 20},
		"nfs_fh3":   fh,
		"fattr3":    attrs,
		"diropargs3": types.DiropArgs3{
			Dir:  fh,
			Name: "file.txt",
		},
		"GETATTR3args":  types.GetAttr3Args{Object: fh},
		"GETATTR3resok": types.GetAttr3ResOk{ObjAttributes: attrs},
		"GETATTR3res": types.GetAttr3Res{
			Status: types.NFS3OK,
			Resok:  &types.GetAttr3ResOk{ObjAttributes: attrs},
		},
		"LOOKUP3args": types.Lookup3Args{
			What: types.DiropArgs3{Dir: fh, Name: "a"},
		},
		"LOOKUP3resok": types.Lookup3ResOk{
			Object:        fh,
			ObjAttributes: &attrs,
			DirAttributes: &attrs,
		},
		"LOOKUP3resfail": types.Lookup3ResFail{DirAttributes: &attrs},
		"LOOKUP3res": types.Lookup3Res{
			Status: types.NFS3OK,
			Resok: &types.Lookup3ResOk{
				Object:        fh,
				ObjAttributes: &attrs,
			},
		},
		"ACCESS3args": types.Access3Args{
			Object: fh,
			Access: types.AccessRead | types.AccessLookup,
		},
		"ACCESS3resok": types.Access3ResOk{
			ObjAttributes: &attrs,
			Access:        types.AccessRead,
		},
		"ACCESS3resfail": types.Access3ResFail{ObjAttributes: &attrs},
		"ACCESS3res": types.Access3Res{
			Status:  types.NFS3ErrAccess,
			Resfail: &types.Access3ResFail{ObjAttributes: &attrs},
		},
		"FSINFO3args": types.FsInfo3Args{Fsroot: fh},
		"FSINFO3resok": types.FsInfo3ResOk{
			ObjAttributes: &attrs,
			Rtmax:         1048576,
			Rtpref:        65536,
			Rtmult:        4096,
			Wtmax:         1048576,
			Wtpref:        65536,
			Wtmult:        4096,
			Dtpref:        8192,
			Maxfilesize:   1 << 40,
			TimeDelta:     types.NFSTime3{Seconds: 0, Nseconds: 1},
			Properties:    types.FSFLink | types.FSFSymlink | types.FSFHomogeneous,
		},
		"FSINFO3resfail": types.FsInfo3ResFail{ObjAttributes: &attrs},
		"FSINFO3res": types.FsInfo3Res{
			Status: types.NFS3OK,
			Resok:  &types.FsInfo3ResOk{Rtmax: 1, TimeDelta: types.NFSTime3{Nseconds: 1}},
		},
		"PATHCONF3args": types.PathConf3Args{Object: fh},
		"PATHCONF3resok": types.PathConf3ResOk{
			ObjAttributes:   &attrs,
			Linkmax:         32000,
			NameMax:         255,
			NoTrunc:         true,
			ChownRestricted: true,
			CaseInsensitive: false,
			CasePreserving:  true,
		},
		"PATHCONF3resfail": types.PathConf3ResFail{ObjAttributes: &attrs},
		"PATHCONF3res": types.PathConf3Res{
			Status:  types.NFS3ErrStale,
			Resfail: &types.PathConf3ResFail{ObjAttributes: &attrs},
		},
	}
}

// TestRegisteredCoverage tests that every registered wire type has a
// sample in this suite, so a newly added schema cannot silently skip the
// round-trip properties below.
func TestRegisteredCoverage(t *testing.T) {
	samples := sampleValues()
	for _, c := range xdr.Registered() {
		assert.Contains(t, samples, c.Name(), "registered type %s has no sample", c.Name())
	}
}

// TestRoundTripAllTypes tests the three codec properties over every wire
// type: alignment (length is a multiple of 4), round-trip equality, and
// deterministic encoding. It also checks the truncation property: dropping
// the final byte of any valid encoding must fail with ErrTruncated.
func TestRoundTripAllTypes(t *testing.T) {
	for name, sample := range sampleValues() {
		t.Run(name, func(t *testing.T) {
			data, err := xdr.Marshal(sample)
			require.NoError(t, err)
			assert.Zero(t, len(data)%4, "encoding must be 4-byte aligned")

			again, err := xdr.Marshal(sample)
			require.NoError(t, err)
			assert.Equal(t, data, again, "encoding must be deterministic")

			out, err := xdr.UnmarshalByName(name, data)
			require.NoError(t, err)
			got := reflect.ValueOf(out).Elem().Interface()
			assert.Empty(t, cmp.Diff(sample, got, cmpopts.EquateEmpty()))

			_, err = xdr.UnmarshalByName(name, data[:len(data)-1])
			require.Error(t, err)
			assert.ErrorIs(t, err, xdr.ErrTruncated)
		})
	}
}

// TestSpecdata3_WireVector tests the documented byte-for-byte layout of
// the smallest composite: two big-endian uint32 fields, nothing else.
func TestSpecdata3_WireVector(t *testing.T) {
	data, err := xdr.Marshal(types.Specdata3{Specdata1: 1, Specdata2: 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
	}, data)
}

// TestFileHandle3_WireVectors tests the opaque handle layout: the empty
// handle is exactly the 4-byte length field, and an unaligned handle is
// padded with zeros.
func TestFileHandle3_WireVectors(t *testing.T) {
	data, err := xdr.Marshal(types.FileHandle3{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)

	data, err = xdr.Marshal(types.FileHandle3{Data: []byte{0xaa, 0xbb, 0xcc}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x03, 0xaa, 0xbb, 0xcc, 0x00}, data)
}

// TestFattr3_WireSize tests that fattr3 encodes to its fixed 84-byte wire
// size: five uint32s, five uint64s, one specdata3, three nfstime3s.
func TestFattr3_WireSize(t *testing.T) {
	data, err := xdr.Marshal(sampleFattr3())
	require.NoError(t, err)
	assert.Len(t, data, 84)

	// The leading field is the ftype3 enum.
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, data[:4])
}

// TestFattr3_TypeValidation tests ftype3 enforcement: the zero value is
// not a declared member, on either side of the codec.
func TestFattr3_TypeValidation(t *testing.T) {
	attrs := sampleFattr3()
	attrs.Type = 0

	_, err := xdr.Marshal(attrs)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrValueOutOfRange)

	data, err := xdr.Marshal(sampleFattr3())
	require.NoError(t, err)
	data[3] = 0x09 // not a declared ftype3 member

	var out types.Fattr3
	err = xdr.Unmarshal(data, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

// TestFileHandle3_Bound tests the 64-byte nfs_fh3 limit from RFC 1813.
func TestFileHandle3_Bound(t *testing.T) {
	atLimit := types.FileHandle3{Data: make([]byte, types.FileHandleMaxSize)}
	data, err := xdr.Marshal(atLimit)
	require.NoError(t, err)
	assert.Len(t, data, 4+int(types.FileHandleMaxSize))

	oversized := types.FileHandle3{Data: make([]byte, types.FileHandleMaxSize+1)}
	_, err = xdr.Marshal(oversized)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrValueOutOfRange)

	// The same bound applies on decode: a 65-byte length prefix is invalid
	// regardless of how much input follows.
	wire := append([]byte{0x00, 0x00, 0x00, 0x41}, make([]byte, 68)...)
	var out types.FileHandle3
	err = xdr.Unmarshal(wire, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

// TestDiropArgs3_NameBound tests the 255-byte filename limit.
func TestDiropArgs3_NameBound(t *testing.T) {
	long := make([]byte, types.FilenameMaxSize+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := xdr.Marshal(types.DiropArgs3{Dir: sampleHandle(), Name: string(long)})
	require.Error(t, err)
	assert.ErrorIs(t, err, xdr.ErrValueOutOfRange)
}

// TestGetAttr3Res_SharedArmShape tests the GETATTR result: both arms carry
// the same fattr3 payload, distinguished only by the status code.
func TestGetAttr3Res_SharedArmShape(t *testing.T) {
	attrs := sampleFattr3()

	okData, err := xdr.Marshal(types.GetAttr3Res{
		Status: types.NFS3OK,
		Resok:  &types.GetAttr3ResOk{ObjAttributes: attrs},
	})
	require.NoError(t, err)

	failData, err := xdr.Marshal(types.GetAttr3Res{
		Status:  types.NFS3ErrStale,
		Resfail: &types.GetAttr3ResOk{ObjAttributes: attrs},
	})
	require.NoError(t, err)

	assert.Len(t, okData, 88, "status + fattr3")
	assert.Equal(t, okData[4:], failData[4:], "arm payloads are identical, only the status differs")

	var out types.GetAttr3Res
	require.NoError(t, xdr.Unmarshal(failData, &out))
	assert.Equal(t, uint32(types.NFS3ErrStale), out.Status)
	require.NotNil(t, out.Resfail)
	assert.Nil(t, out.Resok)
	assert.Empty(t, cmp.Diff(attrs, out.Resfail.ObjAttributes))
}

// TestLookup3Res_Arms tests the LOOKUP result in both directions,
// including the optional post_op_attr fields.
func TestLookup3Res_Arms(t *testing.T) {
	attrs := sampleFattr3()

	in := types.Lookup3Res{
		Status: types.NFS3OK,
		Resok: &types.Lookup3ResOk{
			Object:        sampleHandle(),
			ObjAttributes: &attrs,
			// dir_attributes deliberately absent
		},
	}
	data, err := xdr.Marshal(in)
	require.NoError(t, err)

	var out types.Lookup3Res
	require.NoError(t, xdr.Unmarshal(data, &out))
	require.NotNil(t, out.Resok)
	require.NotNil(t, out.Resok.ObjAttributes)
	assert.Nil(t, out.Resok.DirAttributes)
	assert.Empty(t, cmp.Diff(attrs, *out.Resok.ObjAttributes))

	fail := types.Lookup3Res{
		Status:  types.NFS3ErrNoEnt,
		Resfail: &types.Lookup3ResFail{DirAttributes: &attrs},
	}
	data, err = xdr.Marshal(fail)
	require.NoError(t, err)

	out = types.Lookup3Res{}
	require.NoError(t, xdr.Unmarshal(data, &out))
	assert.Equal(t, uint32(types.NFS3ErrNoEnt), out.Status)
	require.NotNil(t, out.Resfail)
	require.NotNil(t, out.Resfail.DirAttributes)
	assert.Nil(t, out.Resok)
}

// TestResult_UnknownStatus tests that a status code outside nfsstat3 fails
// with ErrUnknownDiscriminant for every result union.
func TestResult_UnknownStatus(t *testing.T) {
	// 42 is not an nfsstat3 code.
	wire := []byte{0x00, 0x00, 0x00, 0x2a}

	for _, name := range []string{
		"GETATTR3res", "LOOKUP3res", "ACCESS3res", "FSINFO3res", "PATHCONF3res",
	} {
		_, err := xdr.UnmarshalByName(name, wire)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant, name)
	}
}

// TestPathConf3ResOk_BoolVector tests the trailing bool block of the
// PATHCONF payload against its expected wire bytes.
func TestPathConf3ResOk_BoolVector(t *testing.T) {
	in := types.PathConf3ResOk{
		Linkmax:         1,
		NameMax:         255,
		NoTrunc:         true,
		ChownRestricted: false,
		CaseInsensitive: false,
		CasePreserving:  true,
	}

	data, err := xdr.Marshal(in)
	require.NoError(t, err)

	// absent attrs + linkmax + name_max + four bools
	require.Len(t, data, 28)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00, // obj_attributes absent
		0x00, 0x00, 0x00, 0x01, // linkmax
		0x00, 0x00, 0x00, 0xff, // name_max
		0x00, 0x00, 0x00, 0x01, // no_trunc
		0x00, 0x00, 0x00, 0x00, // chown_restricted
		0x00, 0x00, 0x00, 0x00, // case_insensitive
		0x00, 0x00, 0x00, 0x01, // case_preserving
	}, data)
}
