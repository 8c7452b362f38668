/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// PostgresURL renders a lib/pq connection URL. Credentials are escaped.
func PostgresURL(cfg *ConnectionConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q := url.Values{}
	q.Set("sslmode", sslMode)
	if secs := int(cfg.ConnectTimeout.Seconds()); secs > 0 {
		q.Set("connect_timeout", strconv.Itoa(secs))
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Path:   "/" + cfg.DBName,
	}
	// a Unix socket directory travels as a query parameter
	if strings.HasPrefix(cfg.Host, "/") {
		q.Set("host", cfg.Host)
		q.Set("port", strconv.Itoa(cfg.Port))
	} else {
		u.Host = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// MySQLDSN renders a go-sql-driver/mysql DSN.
func MySQLDSN(cfg *ConnectionConfig) string {
	charset := cfg.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Timeout = cfg.ConnectTimeout
	mc.Params = map[string]string{"charset": charset}
	return mc.FormatDSN()
}

// SQLiteDSN renders a DSN understood by both drivers behind sqliteshim with
// foreign key enforcement switched on. An empty path yields a private shared
// in-memory database that lives as long as one connection stays open.
func SQLiteDSN(cfg *ConnectionConfig) string {
	const fk = "_pragma=foreign_keys(1)&_foreign_keys=1"
	if isMemorySQLite(cfg) {
		return fmt.Sprintf("file:%s?mode=memory&cache=shared&%s", uuid.NewString(), fk)
	}
	path := cfg.Path
	if path == "" {
		path = cfg.DBName + ".db"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + strings.TrimPrefix(path, "file:") + sep + fk
}

func isMemorySQLite(cfg *ConnectionConfig) bool {
	return (cfg.Path == "" && cfg.DBName == "") || cfg.Path == ":memory:"
}
