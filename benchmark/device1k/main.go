package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 1000
var valuesPerDevice int = 10
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			upsertDevice(i+1, uuid.NewString())
			fmt.Printf("\rupserted device %v", i+1)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rupserted %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	baseTime := time.Now().Unix()

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < valuesPerDevice; j++ {
				postValue(baseTime+int64(j), int64(rnd.Intn(4)+1), rnd.Float64()*100, int64(i+1))
			}
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	total := maxDevices * valuesPerDevice
	fmt.Printf(
		"posted %v values: used time=%v seconds, throughput=%v action/second\n",
		total, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
	)
}

func upsertDevice(id int, handle string) {
	body, _ := json.Marshal(map[string]any{
		"name":   fmt.Sprintf("bench device %v", id),
		"device": handle,
	})
	resp, err := http.DefaultClient.Do(mustRequest(
		http.MethodPut,
		fmt.Sprintf("http://%s/devices/%v", httpHostPort, id),
		body,
	))
	if err != nil {
		log.Printf("upsert device %v failed: %v", id, err)
		return
	}
	resp.Body.Close()
}

func postValue(valueTime int64, typeID int64, value float64, deviceID int64) {
	body, _ := json.Marshal(map[string]any{
		"time":          valueTime,
		"value_type_id": typeID,
		"value":         value,
		"device_id":     deviceID,
	})
	resp, err := http.Post(
		fmt.Sprintf("http://%s/values", httpHostPort),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Printf("post value for device %v failed: %v", deviceID, err)
		return
	}
	resp.Body.Close()
}

func mustRequest(method string, url string, body []byte) *http.Request {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}
