// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command baghchal plays Bagh Chal at the terminal.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/baghchal/internal/baghchal/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		logrus.Fatal(err)
	}
}
