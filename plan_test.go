package sysloggen

import (
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var partitionTests = []struct {
	total   int64
	workers int
	quotas  []int64
	err     error
}{
	{10, 3, []int64{3, 3, 4}, nil},
	{10, 1, []int64{10}, nil},
	{0, 4, []int64{0, 0, 0, 0}, nil},
	{3, 5, []int64{0, 0, 0, 0, 3}, nil},
	{100, 4, []int64{25, 25, 25, 25}, nil},
	{7, 0, nil, ErrInvalidPlan},
	{7, -1, nil, ErrInvalidPlan},
	{-1, 2, nil, ErrInvalidPlan},
}

func TestPartition(t *testing.T) {
	for i, tc := range partitionTests {
		tc := tc
		t.Run(fmt.Sprintf("#%d", i), func(t *testing.T) {
			quotas, err := Partition(tc.total, tc.workers)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.quotas, quotas)
		})
	}
}

func TestPartitionCoverage(t *testing.T) {
	for total := int64(0); total < 50; total++ {
		for workers := 1; workers < 12; workers++ {
			quotas, err := Partition(total, workers)
			require.NoError(t, err)
			require.Len(t, quotas, workers)

			var sum int64
			for i, q := range quotas {
				sum += q
				if i < workers-1 {
					assert.Equal(t, total/int64(workers), q)
				}
			}
			assert.Equal(t, total, sum, "total %d workers %d", total, workers)
		}
	}
}

var parseDestinationTests = []struct {
	addr string
	port int
	err  bool
}{
	{"127.0.0.1", 514, false},
	{"10.0.0.1", 1, false},
	{"::1", 65535, false},
	{"fe80::1", 5140, false},
	{"localhost", 514, true},
	{"", 514, true},
	{"256.0.0.1", 514, true},
	{"127.0.0.1", 0, true},
	{"127.0.0.1", 65536, true},
	{"127.0.0.1", -1, true},
}

func TestParseDestination(t *testing.T) {
	for i, tc := range parseDestinationTests {
		tc := tc
		t.Run(fmt.Sprintf("#%d", i), func(t *testing.T) {
			addr, err := ParseDestination(tc.addr, tc.port)
			if tc.err {
				assert.True(t, errors.Is(err, ErrInvalidDestination), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, addr.IP.Equal(net.ParseIP(tc.addr)))
			assert.Equal(t, tc.port, addr.Port)
		})
	}
}

func TestNewPlan(t *testing.T) {
	dst, err := ParseDestination("127.0.0.1", 514)
	require.NoError(t, err)

	plan, err := NewPlan(dst, 10, 3, "10.0.0.1", 5*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 3, 4}, plan.PerWorkerQuota)
	assert.Equal(t, 3, plan.WorkerCount)
	assert.Equal(t, "10.0.0.1", plan.SourceAddress)
	assert.Equal(t, 5*time.Millisecond, plan.InterSendDelay)

	_, err = NewPlan(dst, 10, 0, "", 0)
	assert.True(t, errors.Is(err, ErrInvalidPlan))

	_, err = NewPlan(nil, 10, 1, "", 0)
	assert.True(t, errors.Is(err, ErrInvalidDestination))

	_, err = NewPlan(dst, 10, 1, "", -time.Second)
	assert.True(t, errors.Is(err, ErrInvalidPlan))
}

func TestPlanValidate(t *testing.T) {
	dst := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 514}

	plans := []struct {
		plan DispatchPlan
		ok   bool
	}{
		{DispatchPlan{Destination: dst, TotalMessages: 5, WorkerCount: 2, PerWorkerQuota: []int64{2, 3}}, true},
		{DispatchPlan{Destination: dst, TotalMessages: 5, WorkerCount: 2, PerWorkerQuota: []int64{2, 2}}, false},
		{DispatchPlan{Destination: dst, TotalMessages: 5, WorkerCount: 3, PerWorkerQuota: []int64{2, 3}}, false},
		{DispatchPlan{Destination: dst, TotalMessages: 1, WorkerCount: 2, PerWorkerQuota: []int64{-1, 2}}, false},
		{DispatchPlan{TotalMessages: 1, WorkerCount: 1, PerWorkerQuota: []int64{1}}, false},
	}
	for i, tc := range plans {
		tc := tc
		t.Run(fmt.Sprintf("#%d", i), func(t *testing.T) {
			err := tc.plan.Validate()
			assert.Equal(t, tc.ok, err == nil, "got %v", err)
		})
	}
}
