package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	batteryGrpc "liyu1981.xyz/battery-tracking-service/pkg/grpc"
)

var maxBatteries int = 1000
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient *batteryGrpc.InventoryServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var throttled atomic.Int64

func main() {
	productNumbers := make([]string, maxBatteries)
	for i := range maxBatteries {
		productNumbers[i] = "BX-" + uuid.NewString()[:8]
	}
	fmt.Printf("generated %v product numbers\n", maxBatteries)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	// lift the http limit for this client, the grpc limit stays at its default
	raiseLimiter("127.0.0.1", 10000, 10000)
	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = batteryGrpc.NewInventoryServiceClient(conn)

	fmt.Printf("gRPC server verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	// the store rewrites whole tables, so writes go one at a time
	startTime = time.Now()
	ids := make([]int64, 0, maxBatteries)
	for i := range maxBatteries {
		if id := addBattery(productNumbers[i]); id > 0 {
			ids = append(ids, id)
		}
		fmt.Printf("\radded battery %v", i)
	}
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\radded %v batteries: used time=%v seconds, throughput=%v action/second, throttled=%v\n",
		len(ids), usedTime.Seconds(), float64(maxBatteries)/usedTime.Seconds(), throttled.Load(),
	)

	startTime = time.Now()
	for _, id := range ids {
		updateVoltage(id)
		fmt.Printf("\rchecked battery %v", id)
	}
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rchecked %v batteries: used time=%v seconds, throughput=%v action/second, throttled=%v\n",
		len(ids), usedTime.Seconds(), float64(len(ids))/usedTime.Seconds(), throttled.Load(),
	)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxBatteries {
		wg.Add(1)
		go func() {
			doReads(productNumbers[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid reads for %v batteries: used time=%v seconds, throughput=%v action/second, throttled=%v\n",
		maxBatteries, usedTime.Seconds(), float64(maxBatteries*3)/usedTime.Seconds(), throttled.Load(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func postJSON(path string, payload any) (*http.Response, error) {
	jsonData, _ := json.Marshal(payload)
	return http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
}

func raiseLimiter(client string, rate float64, burst int) {
	resp, err := postJSON("/limiters/"+client, map[string]any{"rate": rate, "burst": burst})
	if err != nil {
		log.Fatal("Failed to raise rate limiter:", err)
	}
	defer resp.Body.Close()
}

func checkGrpcErr(err error) {
	if err == nil {
		return
	}
	if status.Code(err) == codes.ResourceExhausted {
		throttled.Add(1)
		return
	}
	fmt.Printf("\nerror: %v\n", err)
}

func checkHttpResp(resp *http.Response, err error, want int) {
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case want:
	case http.StatusTooManyRequests:
		throttled.Add(1)
	default:
		fmt.Printf("\nresponse status code != %v: %v\n", want, resp.Status)
	}
}

func addBattery(productNumber string) int64 {
	voltage := rndFloat64(9.5, 12.8, 2)
	payload := map[string]any{
		"product_number":  productNumber,
		"packing_month":   fmt.Sprintf("2024-%02d", 1+rnd.Intn(12)),
		"initial_voltage": voltage,
	}

	if flipCoin() {
		resp, err := postJSON("/batteries", payload)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return 0
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			if resp.StatusCode == http.StatusTooManyRequests {
				throttled.Add(1)
			}
			return 0
		}
		var created struct {
			ID int64 `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return 0
		}
		return created.ID
	}

	req, _ := structpb.NewStruct(payload)
	created, err := grpcClient.AddBattery(context.Background(), req)
	if err != nil {
		checkGrpcErr(err)
		return 0
	}
	return int64(created.Fields["id"].GetNumberValue())
}

func updateVoltage(id int64) {
	payload := map[string]any{
		"reading":    rndFloat64(9.5, 12.8, 2),
		"checked_by": "benchmark",
	}

	if flipCoin() {
		resp, err := postJSON(fmt.Sprintf("/batteries/%d/voltage", id), payload)
		checkHttpResp(resp, err, http.StatusOK)
		return
	}

	payload["id"] = id
	req, _ := structpb.NewStruct(payload)
	_, err := grpcClient.UpdateVoltage(context.Background(), req)
	checkGrpcErr(err)
}

func doReads(productNumber string) {
	actions := []func(){
		genScanAction(productNumber),
		genListAction(productNumber),
		genDashboardAction(),
	}
	actionNames := []string{
		"Scan",
		"List",
		"Dashboard",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for battery %v", actionNames[index], productNumber)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genScanAction(productNumber string) func() {
	return func() {
		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/batteries/scan/%s", httpHostPort, productNumber))
			checkHttpResp(resp, err, http.StatusOK)
			return
		}
		_, err := grpcClient.ScanBattery(context.Background(), wrapperspb.String(productNumber))
		checkGrpcErr(err)
	}
}

func genListAction(productNumber string) func() {
	return func() {
		query := productNumber[:5]
		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/batteries?product=%s&voltage_min=11", httpHostPort, query))
			checkHttpResp(resp, err, http.StatusOK)
			return
		}
		req, _ := structpb.NewStruct(map[string]any{"product": query, "voltage_min": 11.0})
		_, err := grpcClient.ListBatteries(context.Background(), req)
		checkGrpcErr(err)
	}
}

func genDashboardAction() func() {
	return func() {
		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/dashboard", httpHostPort))
			checkHttpResp(resp, err, http.StatusOK)
			return
		}
		_, err := grpcClient.Dashboard(context.Background(), &emptypb.Empty{})
		checkGrpcErr(err)
	}
}
